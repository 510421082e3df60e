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

// WorkerHandler - кабинет рабочего: дашборд, профиль,
// поиск вакансий и отклики.
type WorkerHandler struct {
	*BaseHandler
	profileService     services.ProfileService
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewWorkerHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	jobService services.JobService,
	applicationService services.ApplicationService,
) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler:        base,
		profileService:     profileService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *WorkerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	worker := rg.Group("/worker")
	worker.Use(middleware.RequireRole(models.UserRoleWorker))
	{
		worker.GET("/dashboard", h.Dashboard)
		worker.GET("/profile", h.GetProfile)
		worker.PUT("/profile", h.UpdateProfile)
		worker.GET("/jobs", h.Jobs)
		worker.POST("/jobs/:id/apply", h.Apply)
	}
}

func (h *WorkerHandler) Dashboard(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.WorkerDashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *WorkerHandler) GetProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetWorkerProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *WorkerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.profileService.UpsertWorkerProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"profile": profile,
	})
}

// Jobs - поиск вакансий внутри кабинета. В отличие от публичной
// витрины лимит здесь свой (по умолчанию без отсечки).
func (h *WorkerHandler) Jobs(c *gin.Context) {
	var q dto.JobSearchQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	jobs, err := h.jobService.SearchForWorker(c.Request.Context(), &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// Apply - идемпотентный отклик: повторная заявка на ту же вакансию
// не ошибка, клиент получает мягкое сообщение.
func (h *WorkerHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	result, err := h.applicationService.Apply(ctx, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, gin.H{
			"message":     "You have already applied for this job.",
			"application": result.Application,
		})
		return
	}

	logger.CtxInfo(ctx, "Application submitted", "job_id", c.Param("id"))
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully!",
		"application": result.Application,
	})
}
