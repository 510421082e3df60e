package dto

import "bluehire_backend/internal/models"

// AdminDashboardResponse - полные выборки без фильтров.
// Допустимо только при предполагаемом малом масштабе данных.
type AdminDashboardResponse struct {
	Users        []models.User        `json:"users"`
	Jobs         []models.Job         `json:"jobs"`
	Applications []models.Application `json:"applications"`

	UserCount        int64 `json:"user_count"`
	JobCount         int64 `json:"job_count"`
	ApplicationCount int64 `json:"application_count"`
}
