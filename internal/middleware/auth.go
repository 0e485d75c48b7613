package middleware

import (
	"compro_backend/internal/auth"
	"compro_backend/internal/logger"
	"compro_backend/internal/services"
	"compro_backend/pkg/apperrors"
	"compro_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware - первый этап: bearer токен -> Principal, иначе 401.
// Должен стоять после DBMiddleware.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			return
		}

		principal, err := authService.CurrentPrincipal(c.Request.Context(), db, token)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Set(string(contextkeys.PrincipalKey), principal)
		ctx := logger.WithUserID(c.Request.Context(), principal.UserIDString())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminMiddleware - второй этап: роль admin, иначе 403
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			return
		}
		if !principal.IsAdmin() {
			logger.CtxWarn(c.Request.Context(), "Access denied: admin role required", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetPrincipal извлекает Principal, установленный AuthMiddleware
func GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	val, exists := c.Get(string(contextkeys.PrincipalKey))
	if !exists {
		return nil, false
	}
	principal, ok := val.(*auth.Principal)
	return principal, ok && principal != nil
}
