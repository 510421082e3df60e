package routes

import (
	"net/http"

	"bluehire_backend/internal/handlers"
	"bluehire_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes монтирует все маршруты приложения под /api/v1.
// Публичная часть: авторизация и витрина вакансий. Кабинеты
// закрыты AuthMiddleware, роль проверяют сами группы.
func RegisterRoutes(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	h.Auth.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)

	protected := engine.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())

	h.Worker.RegisterRoutes(protected)
	h.Employer.RegisterRoutes(protected)
	h.Admin.RegisterRoutes(protected)
}
