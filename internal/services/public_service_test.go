package services

import (
	"context"
	"net/http"
	"testing"

	"compro_backend/internal/repositories"
	"compro_backend/internal/services/dto"
	"compro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicService_HomeFeed(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	sc := NewServiceContainer(ContainerOptions{})

	_, err := sc.HomeSectionService.Create(ctx, db, &dto.CreateHomeSectionRequest{Title: "Hero", BackgroundImage: "/hero.jpg"})
	require.NoError(t, err)
	_, err = sc.HomeSectionService.Create(ctx, db, &dto.CreateHomeSectionRequest{Title: "Hidden", BackgroundImage: "/hidden.jpg", IsActive: testutil.Ptr(false)})
	require.NoError(t, err)
	_, err = sc.FaqService.Create(ctx, db, &dto.CreateFaqRequest{Question: "Q", Answer: "A"})
	require.NoError(t, err)

	featured := newPortfolioRequest("featured")
	featured.IsFeatured = testutil.Ptr(true)
	_, err = sc.PortfolioService.Create(ctx, db, featured)
	require.NoError(t, err)
	_, err = sc.PortfolioService.Create(ctx, db, newPortfolioRequest("regular"))
	require.NoError(t, err)

	feed, err := sc.PublicService.GetHomeFeed(ctx, db)
	require.NoError(t, err)

	require.Len(t, feed.Heroes, 1)
	assert.Equal(t, "Hero", feed.Heroes[0].Title)
	require.Len(t, feed.FeaturedPortfolios, 1)
	assert.Equal(t, "featured", feed.FeaturedPortfolios[0].Slug)
	assert.Len(t, feed.Faqs, 1)

	// Пустые разделы - пустые списки, не nil
	assert.NotNil(t, feed.WhyChooses)
	assert.Empty(t, feed.WhyChooses)
	assert.NotNil(t, feed.Clients)
}

func TestPublicService_Portfolios(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := repositories.NewPortfolioRepository()
	portfolios := NewPortfolioService(repo, ContentOptions{})
	svc := NewPublicService(repo)

	video := newPortfolioRequest("showreel")
	video.Category = testutil.Ptr("video")
	_, err := portfolios.Create(ctx, db, video)
	require.NoError(t, err)

	_, err = portfolios.Create(ctx, db, newPortfolioRequest("website"))
	require.NoError(t, err)

	draft := newPortfolioRequest("draft")
	draft.IsActive = testutil.Ptr(false)
	_, err = portfolios.Create(ctx, db, draft)
	require.NoError(t, err)

	all, err := svc.ListPublicPortfolios(ctx, db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = svc.ListPublicPortfolios(ctx, db, "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	videos, err := svc.ListPublicPortfolios(ctx, db, "video")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "showreel", videos[0].Slug)

	found, err := svc.GetPublicPortfolioBySlug(ctx, db, "website")
	require.NoError(t, err)
	assert.Equal(t, "Project website", found.Title)

	_, err = svc.GetPublicPortfolioBySlug(ctx, db, "draft")
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Portfolio not found", appErr.Message)

	_, err = svc.GetPublicPortfolioBySlug(ctx, db, "missing")
	requireAppError(t, err, http.StatusNotFound)
}
