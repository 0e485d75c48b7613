package services

import (
	"context"
	"errors"

	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/services/dto"
	"compro_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PublicService - выборки для публичного сайта, только is_active = true
type PublicService interface {
	GetHomeFeed(ctx context.Context, db *gorm.DB) (*dto.HomeFeed, error)
	ListPublicPortfolios(ctx context.Context, db *gorm.DB, category string) ([]models.Portfolio, error)

	// GetPublicPortfolioBySlug - неактивное портфолио так же NotFound, как и несуществующее
	GetPublicPortfolioBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Portfolio, error)
}

type publicService struct {
	heroes     repositories.ContentRepository[models.HomeSection]
	whyChooses repositories.ContentRepository[models.WhyChoose]
	clients    repositories.ContentRepository[models.Client]
	faqs       repositories.ContentRepository[models.Faq]
	portfolios repositories.PortfolioRepository
}

func NewPublicService(portfolios repositories.PortfolioRepository) PublicService {
	return &publicService{
		heroes:     repositories.NewContentRepository[models.HomeSection](),
		whyChooses: repositories.NewContentRepository[models.WhyChoose](),
		clients:    repositories.NewContentRepository[models.Client](),
		faqs:       repositories.NewContentRepository[models.Faq](),
		portfolios: portfolios,
	}
}

func (s *publicService) GetHomeFeed(ctx context.Context, db *gorm.DB) (*dto.HomeFeed, error) {
	feed := &dto.HomeFeed{}
	g, gctx := errgroup.WithContext(ctx)
	q := db.WithContext(gctx)

	g.Go(func() (err error) {
		feed.Heroes, err = s.heroes.ListActive(q)
		return err
	})
	g.Go(func() (err error) {
		feed.WhyChooses, err = s.whyChooses.ListActive(q)
		return err
	})
	g.Go(func() (err error) {
		feed.FeaturedPortfolios, err = s.portfolios.ListFeatured(q)
		return err
	})
	g.Go(func() (err error) {
		feed.Clients, err = s.clients.ListActive(q)
		return err
	})
	g.Go(func() (err error) {
		feed.Faqs, err = s.faqs.ListActive(q)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return feed, nil
}

func (s *publicService) ListPublicPortfolios(ctx context.Context, db *gorm.DB, category string) ([]models.Portfolio, error) {
	items, err := s.portfolios.ListPublic(db.WithContext(ctx), category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *publicService) GetPublicPortfolioBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Portfolio, error) {
	portfolio, err := s.portfolios.FindActiveBySlug(db.WithContext(ctx), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Portfolio")
		}
		return nil, apperrors.InternalError(err)
	}
	return portfolio, nil
}
