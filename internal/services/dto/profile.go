package dto

import "bluehire_backend/internal/models"

type UpdateWorkerProfileRequest struct {
	Skills            string `form:"skills" json:"skills" validate:"omitempty,max=255"`
	ExperienceYears   int    `form:"experience_years" json:"experience_years" validate:"omitempty,min=0,max=60"`
	PreferredLocation string `form:"preferred_location" json:"preferred_location" validate:"omitempty,max=200"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName        string `form:"company_name" json:"company_name" validate:"omitempty,max=200"`
	CompanyDescription string `form:"company_description" json:"company_description"`
	Location           string `form:"location" json:"location" validate:"omitempty,max=200"`
}

type WorkerDashboardResponse struct {
	Profile      *models.WorkerProfile `json:"profile"`
	Applications []models.Application  `json:"applications"`
}

type EmployerDashboardResponse struct {
	Profile *models.EmployerProfile `json:"profile"`
	Jobs    []models.Job            `json:"jobs"`
}
