package handlers

import (
	"bluehire_backend/internal/services"
	"bluehire_backend/internal/validator"
)

// AppHandlers собирает все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth     *AuthHandler
	Job      *JobHandler
	Worker   *WorkerHandler
	Employer *EmployerHandler
	Admin    *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, sc.AuthService, sc.OtpService),
		Job:      NewJobHandler(base, sc.JobService),
		Worker:   NewWorkerHandler(base, sc.ProfileService, sc.JobService, sc.ApplicationService),
		Employer: NewEmployerHandler(base, sc.ProfileService, sc.JobService, sc.ApplicationService),
		Admin:    NewAdminHandler(base, sc.AdminService),
	}
}
