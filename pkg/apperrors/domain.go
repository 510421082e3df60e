package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже зарегистрирован.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверная пара email/пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrWeakPassword - пароль не проходит минимальные требования.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password is too weak",
	http.StatusBadRequest,
)

// ErrOtpInvalid - код не найден, уже использован или просрочен.
// Формулировка намеренно не различает случаи, чтобы не подсказывать перебором.
var ErrOtpInvalid = New(
	CodeOtpInvalid,
	"otp",
	"Invalid or expired OTP",
	http.StatusBadRequest,
)

// ErrProfileIncomplete - операция требует заполненного профиля.
var ErrProfileIncomplete = New(
	CodeProfileIncomplete,
	"profile",
	"Please complete your profile first",
	http.StatusConflict,
)
