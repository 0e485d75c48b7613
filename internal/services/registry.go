package services

import (
	"compro_backend/internal/auth"
	"compro_backend/internal/imageprocessor"
	"compro_backend/internal/repositories"
	"compro_backend/internal/storage"
	"compro_backend/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	HomeSectionService HomeSectionService
	WhyChooseService   WhyChooseService
	ClientService      ClientService
	FaqService         FaqService
	PortfolioService   PortfolioService
	UploadService      UploadService
	PublicService      PublicService
}

// ContainerOptions - настройки, которые нужны сервисам
type ContainerOptions struct {
	Tokens            *auth.TokenManager
	Storage           storage.Storage
	Validator         *validator.Validator
	MaxUploadSize     int64
	UploadFolder      string
	EnforceReferences bool

	// PreviewSize - сторона превью изображений, 0 - превью не делаются
	PreviewSize int
}

// NewServiceContainer собирает сервисы поверх stateless репозиториев
func NewServiceContainer(opts ContainerOptions) *ServiceContainer {
	if opts.Validator == nil {
		opts.Validator = validator.New()
	}

	uploadRepo := repositories.NewUploadRepository()
	portfolioRepo := repositories.NewPortfolioRepository()

	var images *imageprocessor.Processor
	if opts.PreviewSize > 0 {
		images = imageprocessor.NewProcessor(imageprocessor.DefaultQuality, opts.PreviewSize)
	}

	content := ContentOptions{
		Validator:         opts.Validator,
		UploadRepo:        uploadRepo,
		EnforceReferences: opts.EnforceReferences,
	}

	return &ServiceContainer{
		AuthService: NewAuthService(
			repositories.NewUserRepository(),
			repositories.NewAccessTokenRepository(),
			opts.Tokens,
			opts.Validator,
		),
		HomeSectionService: NewHomeSectionService(content),
		WhyChooseService:   NewWhyChooseService(content),
		ClientService:      NewClientService(content),
		FaqService:         NewFaqService(content),
		PortfolioService:   NewPortfolioService(portfolioRepo, content),
		UploadService: NewUploadService(opts.Storage, uploadRepo, opts.Validator, UploadOptions{
			MaxSize:       opts.MaxUploadSize,
			DefaultFolder: opts.UploadFolder,
			Images:        images,
		}),
		PublicService: NewPublicService(portfolioRepo),
	}
}
