package handlers

import (
	"net/http"

	"bluehire_backend/internal/middleware"
	"bluehire_backend/internal/models"
	"bluehire_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireRole(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
	}
}

// Dashboard - сводка по всей площадке: пользователи, вакансии, отклики.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
