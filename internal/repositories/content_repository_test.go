package repositories

import (
	"testing"

	"compro_backend/internal/models"
	"compro_backend/internal/testutil"
	"compro_backend/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createFaq(t *testing.T, db *gorm.DB, question string, order int, active bool) *models.Faq {
	t.Helper()
	faq := &models.Faq{
		Content:  models.Content{Order: order, IsActive: active},
		Question: question,
		Answer:   "answer",
	}
	require.NoError(t, NewContentRepository[models.Faq]().Create(db, faq))
	return faq
}

func questions(items []models.Faq) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Question)
	}
	return result
}

func TestContentRepository_ListOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewContentRepository[models.Faq]()

	createFaq(t, db, "second", 1, true)
	createFaq(t, db, "first-old", 0, true)
	createFaq(t, db, "first-new", 0, false)

	items, err := repo.List(db, types.ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first-new", "first-old", "second"}, questions(items))
}

func TestContentRepository_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewContentRepository[models.Faq]()

	createFaq(t, db, "visible", 0, true)
	createFaq(t, db, "hidden", 1, false)

	active, err := repo.List(db, types.ListFilters{IsActive: testutil.Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible"}, questions(active))

	inactive, err := repo.List(db, types.ListFilters{IsActive: testutil.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, []string{"hidden"}, questions(inactive))

	public, err := repo.ListActive(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"visible"}, questions(public))
}

func TestContentRepository_EmptyListIsNotNil(t *testing.T) {
	db := testutil.NewTestDB(t)

	items, err := NewContentRepository[models.Client]().ListActive(db)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestContentRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewContentRepository[models.Faq]()
	faq := createFaq(t, db, "old", 3, true)

	err := repo.Update(db, faq, map[string]interface{}{"question": "new", "is_active": false})
	require.NoError(t, err)
	assert.Equal(t, "new", faq.Question)
	assert.False(t, faq.IsActive)
	assert.Equal(t, 3, faq.Order)

	found, err := repo.FindByID(db, faq.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.Question)

	require.NoError(t, repo.Delete(db, faq.ID))
	_, err = repo.FindByID(db, faq.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(db, faq.ID), ErrRecordNotFound)
}

func createPortfolio(t *testing.T, db *gorm.DB, title, slug string, category models.PortfolioCategory, featured, active bool, order int) *models.Portfolio {
	t.Helper()
	portfolio := &models.Portfolio{
		Content:    models.Content{Order: order, IsActive: active},
		Title:      title,
		Slug:       slug,
		Category:   category,
		IsFeatured: featured,
		Media:      datatypes.JSONSlice[models.MediaItem]{{Type: models.MediaTypeImage, Path: "/uploads/" + slug + ".jpg"}},
	}
	require.NoError(t, NewPortfolioRepository().Create(db, portfolio))
	return portfolio
}

func slugs(items []models.Portfolio) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Slug)
	}
	return result
}

func TestPortfolioRepository_DuplicateSlug(t *testing.T) {
	db := testutil.NewTestDB(t)
	createPortfolio(t, db, "Brand", "brand", models.PortfolioCategoryBranding, false, true, 0)

	err := NewPortfolioRepository().Create(db, &models.Portfolio{
		Title:    "Brand 2",
		Slug:     "brand",
		Category: models.PortfolioCategoryDesign,
		Media:    datatypes.JSONSlice[models.MediaItem]{{Type: models.MediaTypeImage, Path: "/a.jpg"}},
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestPortfolioRepository_Search(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPortfolioRepository()

	createPortfolio(t, db, "Cafe Website", "cafe-website", models.PortfolioCategoryDesign, true, true, 0)
	createPortfolio(t, db, "Wedding Shoot", "wedding", models.PortfolioCategoryPhotography, false, false, 1)
	createPortfolio(t, db, "Logo Pack", "logo-pack", models.PortfolioCategoryBranding, true, true, 2)

	items, err := repo.Search(db, types.ListFilters{Category: "photography"})
	require.NoError(t, err)
	assert.Equal(t, []string{"wedding"}, slugs(items))

	items, err = repo.Search(db, types.ListFilters{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = repo.Search(db, types.ListFilters{IsFeatured: testutil.Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-website", "logo-pack"}, slugs(items))

	items, err = repo.Search(db, types.ListFilters{Search: "WEBSITE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-website"}, slugs(items))

	items, err = repo.Search(db, types.ListFilters{Search: "logo-", IsActive: testutil.Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"logo-pack"}, slugs(items))
}

func TestPortfolioRepository_SlugExists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPortfolioRepository()
	item := createPortfolio(t, db, "Brand", "brand", models.PortfolioCategoryBranding, false, true, 0)

	exists, err := repo.SlugExists(db, "brand", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(db, "brand", item.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.SlugExists(db, "other", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPortfolioRepository_PublicQueries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPortfolioRepository()

	createPortfolio(t, db, "A", "a", models.PortfolioCategoryDesign, true, true, 1)
	createPortfolio(t, db, "B", "b", models.PortfolioCategoryVideo, false, true, 0)
	createPortfolio(t, db, "C", "c", models.PortfolioCategoryDesign, true, false, 0)

	public, err := repo.ListPublic(db, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, slugs(public))

	design, err := repo.ListPublic(db, "design")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, slugs(design))

	featured, err := repo.ListFeatured(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, slugs(featured))

	found, err := repo.FindActiveBySlug(db, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", found.Title)
	require.Len(t, found.Media, 1)
	assert.Equal(t, "/uploads/a.jpg", found.Media[0].Path)

	_, err = repo.FindActiveBySlug(db, "c")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
