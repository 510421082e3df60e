package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleWorker   UserRole = "worker"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	// Статусы заявок. Переходы shortlisted/rejected/hired пока не имеют
	// своих маршрутов, но enum оставлен расширяемым.
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"
)
