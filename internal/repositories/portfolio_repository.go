package repositories

import (
	"strings"

	"compro_backend/internal/models"
	"compro_backend/internal/types"

	"gorm.io/gorm"
)

// PortfolioRepository - общий CRUD плюс фильтры, slug и выборки для публичной части
type PortfolioRepository interface {
	ContentRepository[models.Portfolio]

	// Search - список в админке: is_active, is_featured, category, поиск по title/slug
	Search(db *gorm.DB, filters types.ListFilters) ([]models.Portfolio, error)

	// SlugExists проверяет уникальность slug. excludeID = 0 - проверка по всем записям.
	SlugExists(db *gorm.DB, slug string, excludeID uint) (bool, error)

	FindActiveBySlug(db *gorm.DB, slug string) (*models.Portfolio, error)
	ListPublic(db *gorm.DB, category string) ([]models.Portfolio, error)
	ListFeatured(db *gorm.DB) ([]models.Portfolio, error)
}

type portfolioRepository struct {
	ContentRepository[models.Portfolio]
}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{
		ContentRepository: NewContentRepository[models.Portfolio](),
	}
}

func (r *portfolioRepository) Search(db *gorm.DB, filters types.ListFilters) ([]models.Portfolio, error) {
	scopes := []Scope{CategoryScope(filters.Category)}
	if filters.IsFeatured != nil {
		featured := *filters.IsFeatured
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("is_featured = ?", featured)
		})
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		// LIKE-символы (% и _) в строке поиска не экранируются
		pattern := "%" + strings.ToLower(search) + "%"
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("(LOWER(title) LIKE ? OR LOWER(slug) LIKE ?)", pattern, pattern)
		})
	}
	return r.List(db, filters, scopes...)
}

// CategoryScope - "" и "all" без фильтра
func CategoryScope(category string) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if !types.HasCategory(category) {
			return q
		}
		return q.Where("category = ?", category)
	}
}

func (r *portfolioRepository) SlugExists(db *gorm.DB, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.Model(&models.Portfolio{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *portfolioRepository) FindActiveBySlug(db *gorm.DB, slug string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := db.Scopes(ActiveOnly).Where("slug = ?", slug).First(&portfolio).Error
	if err != nil {
		return nil, translate(err, ErrRecordNotFound)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) ListPublic(db *gorm.DB, category string) ([]models.Portfolio, error) {
	return r.ListActive(db, CategoryScope(category))
}

func (r *portfolioRepository) ListFeatured(db *gorm.DB) ([]models.Portfolio, error) {
	return r.ListActive(db, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_featured = ?", true)
	})
}
