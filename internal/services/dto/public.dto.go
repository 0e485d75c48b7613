package dto

import "compro_backend/internal/models"

// HomeFeed - все данные главной страницы одним ответом. Пустые списки отдаются как [].
type HomeFeed struct {
	Heroes             []models.HomeSection `json:"heroes"`
	WhyChooses         []models.WhyChoose   `json:"why_chooses"`
	FeaturedPortfolios []models.Portfolio   `json:"featured_portfolios"`
	Clients            []models.Client      `json:"clients"`
	Faqs               []models.Faq         `json:"faqs"`
}
