package validator

import (
	"log"
	"regexp"

	"bluehire_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль, которую может выбрать сам пользователь.
	// Роль admin не регистрируется через публичную форму.
	mustRegister("is-user-role", validateRegisterableRole)

	// 'phone': телефон в свободном международном формате
	mustRegister("phone", validatePhone)
}

func validateRegisterableRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleWorker, models.UserRoleEmployer:
		return true
	default:
		return false
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneRe.MatchString(value)
}
