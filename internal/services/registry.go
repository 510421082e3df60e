package services

// ServiceContainer собирает все сервисы приложения для передачи в хэндлеры.
type ServiceContainer struct {
	AuthService        AuthService
	OtpService         OtpService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
	AdminService       AdminService
}
