package handlers

import (
	"net/http"

	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/services"
	"bluehire_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	otpService  services.OtpService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, otpService services.OtpService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		otpService:  otpService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)

		otp := auth.Group("/otp")
		{
			otp.POST("/request", h.RequestOtp)
			otp.POST("/verify", h.VerifyOtp)
		}
	}
}

// Register создает пользователя и заготовку профиля под выбранную роль.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.authService.Register(ctx, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "User registered", "email", req.Email, "role", req.Role)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! Please log in.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout ничего не инвалидирует на сервере: сессия живет в JWT,
// клиент просто выбрасывает токен.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "You have been logged out.",
	})
}

func (h *AuthHandler) RequestOtp(c *gin.Context) {
	var req dto.OtpRequestRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.otpService.RequestOtp(c.Request.Context(), req.Phone)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req dto.OtpVerifyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.otpService.VerifyOtp(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
