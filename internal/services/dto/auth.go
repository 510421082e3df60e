package dto

// Запросы принимаются и как form-encoded, и как JSON,
// поэтому у полей двойные теги привязки.

type RegisterRequest struct {
	Name              string `form:"name" json:"name" validate:"required,min=2,max=120"`
	Email             string `form:"email" json:"email" validate:"required,email"`
	Phone             string `form:"phone" json:"phone" validate:"omitempty,phone"`
	Password          string `form:"password" json:"password" validate:"required,min=6"`
	Role              string `form:"role" json:"role" validate:"required,is-user-role"`
	PreferredLanguage string `form:"preferred_language" json:"preferred_language" validate:"omitempty,max=10"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type UserResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Role              string `json:"role"`
	PreferredLanguage string `json:"preferred_language"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type OtpRequestRequest struct {
	Phone string `form:"phone" json:"phone" validate:"required,phone"`
}

// OtpRequestResponse несет код только в демо-режиме (нет боевого SMS-шлюза),
// как и исходная система, показывавшая код на экране.
type OtpRequestResponse struct {
	Message  string `json:"message"`
	DemoCode string `json:"demo_code,omitempty"`
}

type OtpVerifyRequest struct {
	Phone string `form:"phone" json:"phone" validate:"required,phone"`
	Code  string `form:"code" json:"code" validate:"required,len=6,numeric"`
}

// OtpVerifyResponse: либо login с токеном, либо указание
// завершить регистрацию (телефон подтвержден, но пользователя нет).
type OtpVerifyResponse struct {
	Message              string         `json:"message"`
	RegistrationRequired bool           `json:"registration_required,omitempty"`
	Login                *LoginResponse `json:"login,omitempty"`
}
