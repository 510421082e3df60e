package handlers

import (
	"net/http"

	"bluehire_backend/internal/services"
	"bluehire_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler обслуживает публичную витрину вакансий,
// доступную без авторизации.
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.Search)
		jobs.GET("/:id", h.GetByID)
	}
}

func (h *JobHandler) Search(c *gin.Context) {
	var q dto.JobSearchQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	jobs, err := h.jobService.SearchPublic(c.Request.Context(), &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
