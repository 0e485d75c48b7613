package routes

import (
	"net/http"
	"strings"

	"compro_backend/internal/handlers"
	"compro_backend/internal/logger"
	"compro_backend/internal/middleware"
	"compro_backend/internal/services"
	"compro_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// APIPrefix - те же маршруты дублируются под /api
const APIPrefix = "/api"

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
	store storage.Storage,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Локальные файлы отдаются самим сервером, облачные - через свой URL
	if local, ok := store.(*storage.LocalStorage); ok && strings.HasPrefix(local.BaseURL(), "/") {
		ginRouter.Static(local.BaseURL(), local.Root())
		logger.Info("Local storage is served", "url", local.BaseURL(), "root", local.Root())
	}

	authMW := middleware.AuthMiddleware(authService)
	adminMW := middleware.AdminMiddleware()

	for _, prefix := range []string{"", APIPrefix} {
		public := ginRouter.Group(prefix)
		authenticated := public.Group("", authMW)
		admin := authenticated.Group("", adminMW)

		groups := handlers.RouteGroups{
			Public:        public,
			Authenticated: authenticated,
			Admin:         admin,
		}

		appHandlers.AuthHandler.RegisterRoutes(groups)
		appHandlers.UploadHandler.RegisterRoutes(groups)
		appHandlers.HomeSectionHandler.RegisterRoutes(groups)
		appHandlers.WhyChooseHandler.RegisterRoutes(groups)
		appHandlers.PortfolioHandler.RegisterRoutes(groups)
		appHandlers.ClientHandler.RegisterRoutes(groups)
		appHandlers.FaqHandler.RegisterRoutes(groups)
		appHandlers.PublicHandler.RegisterRoutes(groups)
	}
}
