package handlers

import (
	"net/http"

	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/middleware"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/services"
	"bluehire_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// EmployerHandler - кабинет работодателя: дашборд, профиль компании,
// публикация вакансий и просмотр откликов.
type EmployerHandler struct {
	*BaseHandler
	profileService     services.ProfileService
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewEmployerHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	jobService services.JobService,
	applicationService services.ApplicationService,
) *EmployerHandler {
	return &EmployerHandler{
		BaseHandler:        base,
		profileService:     profileService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *EmployerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employer := rg.Group("/employer")
	employer.Use(middleware.RequireRole(models.UserRoleEmployer))
	{
		employer.GET("/dashboard", h.Dashboard)
		employer.GET("/profile", h.GetProfile)
		employer.PUT("/profile", h.UpdateProfile)
		employer.POST("/jobs", h.CreateJob)
		employer.GET("/jobs/:id/applications", h.JobApplications)
	}
}

func (h *EmployerHandler) Dashboard(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.EmployerDashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetEmployerProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.profileService.UpsertEmployerProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"profile": profile,
	})
}

func (h *EmployerHandler) CreateJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()
	job, err := h.jobService.Create(ctx, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Job posted", "job_id", job.ID, "title", job.Title)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully!",
		"job":     job,
	})
}

// JobApplications отдает отклики только по своей вакансии,
// чужие закрыты 403.
func (h *EmployerHandler) JobApplications(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	job, applications, err := h.applicationService.ListForJob(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":          job,
		"applications": applications,
		"count":        len(applications),
	})
}
