package handlers

import (
	"net/http"

	"compro_backend/internal/services"
	"compro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(g RouteGroups) {
	g.Public.POST("/auth/login", h.Login)

	auth := g.Authenticated.Group("/auth")
	{
		auth.GET("/me", h.Me)
		auth.POST("/logout", h.Logout)
		auth.POST("/logout-all", h.LogoutAll)
		auth.POST("/change-password", h.ChangePassword)
	}
}

// POST /auth/login
// Login godoc
// @Summary Вход администратора
// @Description Проверяет email и пароль, выдает bearer токен
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email и пароль"
// @Success 200 {object} dto.LoginResponse
// @Failure 422 {object} apperrors.ErrorResponse "Неверные данные входа"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GET /auth/me
// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]models.User
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": principal.User})
}

// POST /auth/logout
// Logout godoc
// @Summary Отозвать текущий токен
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), h.GetDB(c), principal); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// POST /auth/logout-all
// LogoutAll godoc
// @Summary Отозвать все токены пользователя
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message и revoked"
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	revoked, err := h.authService.LogoutAll(c.Request.Context(), h.GetDB(c), principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out from all devices",
		"revoked": revoked,
	})
}

// POST /auth/change-password
// ChangePassword godoc
// @Summary Сменить пароль
// @Description Меняет пароль и отзывает все токены пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ChangePasswordRequest true "Текущий и новый пароль"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 422 {object} apperrors.ErrorResponse "Неверный текущий пароль или ошибки полей"
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.ChangePassword(c.Request.Context(), h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
