package handlers

import (
	"compro_backend/internal/models"
	"compro_backend/internal/services"
	"compro_backend/internal/services/dto"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	HomeSectionHandler *ContentHandler[models.HomeSection, dto.CreateHomeSectionRequest, dto.UpdateHomeSectionRequest]
	WhyChooseHandler   *ContentHandler[models.WhyChoose, dto.CreateWhyChooseRequest, dto.UpdateWhyChooseRequest]
	PortfolioHandler   *ContentHandler[models.Portfolio, dto.CreatePortfolioRequest, dto.UpdatePortfolioRequest]
	ClientHandler      *ContentHandler[models.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	FaqHandler         *ContentHandler[models.Faq, dto.CreateFaqRequest, dto.UpdateFaqRequest]
	UploadHandler      *UploadHandler
	PublicHandler      *PublicHandler
}

// NewAppHandlers создает хэндлеры поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.AuthService),
		HomeSectionHandler: NewContentHandler(base, "/home-sections", sc.HomeSectionService),
		WhyChooseHandler:   NewContentHandler(base, "/why-chooses", sc.WhyChooseService),
		PortfolioHandler:   NewContentHandler(base, "/portfolios", sc.PortfolioService),
		ClientHandler:      NewContentHandler(base, "/clients", sc.ClientService),
		FaqHandler:         NewContentHandler(base, "/faqs", sc.FaqService),
		UploadHandler:      NewUploadHandler(base, sc.UploadService),
		PublicHandler:      NewPublicHandler(base, sc.PublicService),
	}
}
