package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"compro_backend/database"
	"compro_backend/internal/auth"
	"compro_backend/internal/config"
	"compro_backend/internal/handlers"
	"compro_backend/internal/logger"
	"compro_backend/internal/middleware"
	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/routes"
	"compro_backend/internal/services"
	"compro_backend/internal/storage"
	"compro_backend/internal/validator"
	"compro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	defer sqlDB.Close()
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Если не удалось создать админа (проблемы с БД и т.д.) - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      ginRouter,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		return
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает storage, сервисы, хэндлеры и маршруты
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", storageInstance.Provider())

	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(services.ContainerOptions{
		Tokens: auth.NewTokenManager(auth.TokenConfig{
			Secret: cfg.JWT.Secret,
			TTL:    cfg.TokenTTL(),
			Issuer: cfg.JWT.Issuer,
		}),
		Storage:           storageInstance,
		Validator:         validator.New(),
		MaxUploadSize:     cfg.Upload.MaxSize,
		UploadFolder:      cfg.Upload.DefaultFolder,
		EnforceReferences: cfg.Upload.EnforceReferences,
		PreviewSize:       cfg.Upload.PreviewSize,
	})

	// 2. Инициализируем хэндлеры
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Регистрация маршрутов
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.AuthService, storageInstance)

	return ginRouter, nil
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	router.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "route", "Not Found", http.StatusNotFound))
	})
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := strings.TrimSpace(cfg.FirstAdminEmail)
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	return db.Transaction(func(tx *gorm.DB) error {
		_, err := userRepo.FindByEmail(tx, adminEmail)
		if err == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", err)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		name := cfg.FirstAdminName
		if name == "" {
			name = "Administrator"
		}

		newAdmin := &models.User{
			Name:         name,
			Email:        adminEmail,
			PasswordHash: hashedPassword,
			Role:         models.UserRoleAdmin,
		}
		if err := userRepo.Create(tx, newAdmin); err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("Successfully created first admin user", "email", adminEmail)
		return nil
	})
}
