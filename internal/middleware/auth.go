package middleware

import (
	"net/http"
	"strings"

	"bluehire_backend/internal/auth"
	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/models"
	"bluehire_backend/pkg/apperrors"
	"bluehire_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - разрешает сессию: извлекает из bearer-токена
// id пользователя и роль и кладет их в контекст запроса.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Please log in first"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Session expired or invalid, please log in again"),
			})
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, claims.Role)

		// user_id попадет во все логи этого запроса
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole - единый параметризованный гейт доступа по роли.
// Рабочий/работодатель/админ отличаются только аргументом,
// хендлер за гейтом не выполняется при несовпадении.
func RequireRole(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(contextkeys.RoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Please log in first"),
			})
			return
		}

		roleStr, _ := roleVal.(string)
		if models.UserRole(roleStr) != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.NewForbiddenError(string(requiredRole) + " access only"),
			})
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
