// Package seed заполняет пустую БД демонстрационным контентом сайта.
package seed

import (
	"fmt"

	"compro_backend/internal/logger"
	"compro_backend/internal/models"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Result - сколько записей вставлено в каждую таблицу
type Result map[string]int

// Content вставляет демо-записи только в пустые таблицы, повторный запуск ничего не меняет
func Content(db *gorm.DB) (Result, error) {
	result := Result{}

	err := db.Transaction(func(tx *gorm.DB) error {
		heroes, reasons, works, partners, questions := homeSections(), whyChooses(), portfolios(), clients(), faqs()
		steps := []struct {
			table string
			model interface{}
			rows  interface{}
			count int
		}{
			{"home_sections", &models.HomeSection{}, &heroes, len(heroes)},
			{"why_chooses", &models.WhyChoose{}, &reasons, len(reasons)},
			{"portfolios", &models.Portfolio{}, &works, len(works)},
			{"clients", &models.Client{}, &partners, len(partners)},
			{"faqs", &models.Faq{}, &questions, len(questions)},
		}

		for _, step := range steps {
			var existing int64
			if err := tx.Model(step.model).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to count %s: %w", step.table, err)
			}
			if existing > 0 {
				result[step.table] = 0
				continue
			}
			if err := tx.Create(step.rows).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			result[step.table] = step.count
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Seed completed", "inserted", map[string]int(result))
	return result, nil
}

func active(order int) models.Content {
	return models.Content{Order: order, IsActive: true}
}

func homeSections() []models.HomeSection {
	return []models.HomeSection{
		{Content: active(0), Title: "Creative Studio for Growing Brands", BackgroundImage: "/images/hero/banner.jpg"},
		{Content: active(1), Title: "Design That Moves Your Business", BackgroundImage: "/images/hero/banner-2.jpg"},
	}
}

func whyChooses() []models.WhyChoose {
	return []models.WhyChoose{
		{Content: active(0), Title: "Strategic Brand Design", Description: "Visual identities crafted to position your brand clearly and professionally."},
		{Content: active(1), Title: "Creative & Consistent Content", Description: "Design and content that stay aligned across all platforms."},
		{Content: active(2), Title: "Website & Digital Experience", Description: "Modern, responsive websites built to support business growth."},
		{Content: active(3), Title: "Reliable Creative Partner", Description: "We work closely with clients as a long-term creative partner."},
	}
}

func portfolios() []models.Portfolio {
	items := []struct {
		title    string
		image    string
		category models.PortfolioCategory
		featured bool
	}{
		{"Brand Identity & Visual System", "/images/work-grow/mobile-application.jpg", models.PortfolioCategoryBranding, true},
		{"Company Profile Website", "/images/work-grow/weby-dashboard-design.jpg", models.PortfolioCategoryDesign, true},
		{"Website for Cafe & Restaurant", "/images/work-grow/frontend-development.jpg", models.PortfolioCategoryDesign, true},
		{"Social Media Content Design", "/images/work-grow/illustration.jpg", models.PortfolioCategoryDesign, false},
		{"Marketing & Promotional Visuals", "/images/work-grow/financial-image.jpg", models.PortfolioCategoryPhotography, false},
	}

	result := make([]models.Portfolio, 0, len(items))
	for i, item := range items {
		result = append(result, models.Portfolio{
			Content:    active(i),
			Title:      item.title,
			Slug:       slug.Make(item.title),
			Category:   item.category,
			IsFeatured: item.featured,
			Media: datatypes.JSONSlice[models.MediaItem]{
				{Type: models.MediaTypeImage, Path: item.image},
			},
		})
	}
	return result
}

func clients() []models.Client {
	return []models.Client{
		{Content: active(0), Name: "Northwind", Logo: "/images/clients/northwind.svg"},
		{Content: active(1), Name: "Blue Harbor", Logo: "/images/clients/blue-harbor.svg"},
		{Content: active(2), Name: "Kopi Senja", Logo: "/images/clients/kopi-senja.svg"},
	}
}

func faqs() []models.Faq {
	return []models.Faq{
		{Content: active(0), Question: "What services do you offer?", Answer: "We provide branding, visual design, social media design, creative content, and website development."},
		{Content: active(1), Question: "Can you build company profile websites?", Answer: "Yes. We build company profiles, cafe and restaurant websites, brand websites, and landing pages."},
		{Content: active(2), Question: "Can you handle a brand from scratch?", Answer: "We assist from brand research and visual identity development to design implementation."},
		{Content: active(3), Question: "What is the workflow?", Answer: "We start with understanding your needs, then propose solutions, execute the design, revise, and deliver."},
	}
}
