package services

import (
	"fmt"

	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/services/dto"
	"compro_backend/internal/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	HomeSectionService = ContentService[models.HomeSection, dto.CreateHomeSectionRequest, dto.UpdateHomeSectionRequest]
	WhyChooseService   = ContentService[models.WhyChoose, dto.CreateWhyChooseRequest, dto.UpdateWhyChooseRequest]
	ClientService      = ContentService[models.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	FaqService         = ContentService[models.Faq, dto.CreateFaqRequest, dto.UpdateFaqRequest]
	PortfolioService   = ContentService[models.Portfolio, dto.CreatePortfolioRequest, dto.UpdatePortfolioRequest]
)

// ============================================
// HomeSection
// ============================================

func NewHomeSectionService(opts ContentOptions) HomeSectionService {
	return NewContentService(repositories.NewContentRepository[models.HomeSection](), opts,
		ContentSchema[models.HomeSection, dto.CreateHomeSectionRequest, dto.UpdateHomeSectionRequest]{
			Resource: "home_section",
			Label:    "Home section",
			Build: func(req *dto.CreateHomeSectionRequest) *models.HomeSection {
				return &models.HomeSection{
					Content:         newContent(req.Order, req.IsActive),
					Title:           req.Title,
					BackgroundImage: req.BackgroundImage,
				}
			},
			Changes: func(req *dto.UpdateHomeSectionRequest) map[string]interface{} {
				changes := contentChanges(req.Order, req.IsActive)
				setIf(changes, "title", req.Title)
				setIf(changes, "background_image", req.BackgroundImage)
				return changes
			},
			CreateReferences: func(req *dto.CreateHomeSectionRequest) map[string]string {
				return map[string]string{"background_image": req.BackgroundImage}
			},
			UpdateReferences: func(req *dto.UpdateHomeSectionRequest) map[string]string {
				if req.BackgroundImage == nil {
					return nil
				}
				return map[string]string{"background_image": *req.BackgroundImage}
			},
		})
}

// ============================================
// WhyChoose
// ============================================

func NewWhyChooseService(opts ContentOptions) WhyChooseService {
	return NewContentService(repositories.NewContentRepository[models.WhyChoose](), opts,
		ContentSchema[models.WhyChoose, dto.CreateWhyChooseRequest, dto.UpdateWhyChooseRequest]{
			Resource: "why_choose",
			Label:    "Why choose",
			Build: func(req *dto.CreateWhyChooseRequest) *models.WhyChoose {
				return &models.WhyChoose{
					Content:     newContent(req.Order, req.IsActive),
					Title:       req.Title,
					Description: req.Description,
				}
			},
			Changes: func(req *dto.UpdateWhyChooseRequest) map[string]interface{} {
				changes := contentChanges(req.Order, req.IsActive)
				setIf(changes, "title", req.Title)
				setIf(changes, "description", req.Description)
				return changes
			},
		})
}

// ============================================
// Client
// ============================================

func NewClientService(opts ContentOptions) ClientService {
	return NewContentService(repositories.NewContentRepository[models.Client](), opts,
		ContentSchema[models.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
			Resource: "client",
			Label:    "Client",
			Build: func(req *dto.CreateClientRequest) *models.Client {
				return &models.Client{
					Content: newContent(req.Order, req.IsActive),
					Name:    req.Name,
					Logo:    req.Logo,
				}
			},
			Changes: func(req *dto.UpdateClientRequest) map[string]interface{} {
				changes := contentChanges(req.Order, req.IsActive)
				setIf(changes, "name", req.Name)
				setIf(changes, "logo", req.Logo)
				return changes
			},
			CreateReferences: func(req *dto.CreateClientRequest) map[string]string {
				return map[string]string{"logo": req.Logo}
			},
			UpdateReferences: func(req *dto.UpdateClientRequest) map[string]string {
				if req.Logo == nil {
					return nil
				}
				return map[string]string{"logo": *req.Logo}
			},
		})
}

// ============================================
// Faq
// ============================================

func NewFaqService(opts ContentOptions) FaqService {
	return NewContentService(repositories.NewContentRepository[models.Faq](), opts,
		ContentSchema[models.Faq, dto.CreateFaqRequest, dto.UpdateFaqRequest]{
			Resource: "faq",
			Label:    "FAQ",
			Build: func(req *dto.CreateFaqRequest) *models.Faq {
				return &models.Faq{
					Content:  newContent(req.Order, req.IsActive),
					Question: req.Question,
					Answer:   req.Answer,
				}
			},
			Changes: func(req *dto.UpdateFaqRequest) map[string]interface{} {
				changes := contentChanges(req.Order, req.IsActive)
				setIf(changes, "question", req.Question)
				setIf(changes, "answer", req.Answer)
				return changes
			},
		})
}

// ============================================
// Portfolio
// ============================================

func NewPortfolioService(repo repositories.PortfolioRepository, opts ContentOptions) PortfolioService {
	return NewContentService[models.Portfolio](repo, opts,
		ContentSchema[models.Portfolio, dto.CreatePortfolioRequest, dto.UpdatePortfolioRequest]{
			Resource:    "portfolio",
			Label:       "Portfolio",
			UniqueField: "slug",
			Search: func(db *gorm.DB, filters types.ListFilters) ([]models.Portfolio, error) {
				return repo.Search(db, filters)
			},
			Build: func(req *dto.CreatePortfolioRequest) *models.Portfolio {
				category := models.PortfolioCategoryDesign
				if req.Category != nil {
					category = models.PortfolioCategory(*req.Category)
				}
				portfolio := &models.Portfolio{
					Content:     newContent(req.Order, req.IsActive),
					Title:       req.Title,
					Slug:        req.Slug,
					Description: nullableText(req.Description),
					Category:    category,
					Media:       mediaItems(req.Media),
				}
				if req.IsFeatured != nil {
					portfolio.IsFeatured = *req.IsFeatured
				}
				return portfolio
			},
			Changes: func(req *dto.UpdatePortfolioRequest) map[string]interface{} {
				changes := contentChanges(req.Order, req.IsActive)
				setIf(changes, "title", req.Title)
				setIf(changes, "slug", req.Slug)
				setIf(changes, "is_featured", req.IsFeatured)
				if req.Description != nil {
					if text := nullableText(req.Description); text != nil {
						changes["description"] = *text
					} else {
						changes["description"] = nil
					}
				}
				if req.Category != nil {
					changes["category"] = models.PortfolioCategory(*req.Category)
				}
				if req.Media != nil {
					changes["media"] = mediaItems(*req.Media)
				}
				return changes
			},
			ValidateCreate: func(db *gorm.DB, req *dto.CreatePortfolioRequest, fields map[string]string) error {
				return checkSlug(db, repo, req.Slug, 0, fields)
			},
			ValidateUpdate: func(db *gorm.DB, current *models.Portfolio, req *dto.UpdatePortfolioRequest, fields map[string]string) error {
				if req.Slug == nil {
					return nil
				}
				return checkSlug(db, repo, *req.Slug, current.ID, fields)
			},
			CreateReferences: func(req *dto.CreatePortfolioRequest) map[string]string {
				return mediaReferences(req.Media)
			},
			UpdateReferences: func(req *dto.UpdatePortfolioRequest) map[string]string {
				if req.Media == nil {
					return nil
				}
				return mediaReferences(*req.Media)
			},
		})
}

// checkSlug - slug уникален среди всех портфолио, кроме excludeID
func checkSlug(db *gorm.DB, repo repositories.PortfolioRepository, slug string, excludeID uint, fields map[string]string) error {
	if _, invalid := fields["slug"]; invalid || slug == "" {
		return nil
	}
	exists, err := repo.SlugExists(db, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		fields["slug"] = takenMessage("slug")
	}
	return nil
}

func mediaItems(req []dto.MediaItemRequest) datatypes.JSONSlice[models.MediaItem] {
	items := make(datatypes.JSONSlice[models.MediaItem], 0, len(req))
	for _, m := range req {
		items = append(items, models.MediaItem{Type: models.MediaType(m.Type), Path: m.Path})
	}
	return items
}

func mediaReferences(req []dto.MediaItemRequest) map[string]string {
	refs := make(map[string]string, len(req))
	for i, m := range req {
		refs[fmt.Sprintf("media.%d.path", i)] = m.Path
	}
	return refs
}

// nullableText - пустая строка хранится как NULL
func nullableText(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	v := *value
	return &v
}
