package repositories

import (
	"testing"
	"time"

	"compro_backend/internal/models"
	"compro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()
	user := testutil.CreateUser(t, db, "Admin@Example.com", testutil.DefaultPassword, models.UserRoleAdmin)

	found, err := repo.FindByEmail(db, " admin@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(db, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = repo.Create(db, &models.User{Name: "Dup", Email: "Admin@Example.com", PasswordHash: "x", Role: models.UserRoleEditor})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	require.NoError(t, repo.UpdatePassword(db, user.ID, "new-hash"))
	found, err = repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(db, 9999, "x"), ErrUserNotFound)
}

func TestAccessTokenRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAccessTokenRepository()
	user := testutil.CreateAdmin(t, db)
	other := testutil.CreateEditor(t, db)

	first := &models.AccessToken{UserID: user.ID, Name: "admin-token"}
	second := &models.AccessToken{UserID: user.ID, Name: "admin-token"}
	foreign := &models.AccessToken{UserID: other.ID, Name: "admin-token"}
	for _, token := range []*models.AccessToken{first, second, foreign} {
		require.NoError(t, repo.Create(db, token))
		require.NotEmpty(t, token.ID)
	}

	usedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Touch(db, first.ID, usedAt))
	found, err := repo.FindByID(db, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastUsedAt)
	assert.True(t, usedAt.Equal(found.LastUsedAt.UTC()))

	require.NoError(t, repo.DeleteByID(db, first.ID))
	_, err = repo.FindByID(db, first.ID)
	assert.ErrorIs(t, err, ErrAccessTokenNotFound)
	assert.ErrorIs(t, repo.DeleteByID(db, first.ID), ErrAccessTokenNotFound)

	revoked, err := repo.DeleteByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), revoked)

	_, err = repo.FindByID(db, foreign.ID)
	assert.NoError(t, err)
}

func TestAccessToken_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, (&models.AccessToken{}).Expired(now))
	assert.True(t, (&models.AccessToken{ExpiresAt: &past}).Expired(now))
	assert.True(t, (&models.AccessToken{ExpiresAt: &now}).Expired(now))
	assert.False(t, (&models.AccessToken{ExpiresAt: &future}).Expired(now))
}

func TestUploadRepository_MissingPaths(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUploadRepository()

	upload := &models.Upload{Folder: "uploads", StorageKey: "uploads/a.jpg", Path: "/storage/uploads/a.jpg", StorageProvider: "local"}
	require.NoError(t, repo.Create(db, upload))

	missing, err := repo.MissingPaths(db, []string{"/storage/uploads/a.jpg", "/storage/uploads/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/storage/uploads/b.jpg"}, missing)

	missing, err = repo.MissingPaths(db, nil)
	require.NoError(t, err)
	assert.Empty(t, missing)

	found, err := repo.FindByPath(db, "/storage/uploads/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, upload.ID, found.ID)

	_, err = repo.FindByPath(db, "/nope")
	assert.ErrorIs(t, err, ErrUploadNotFound)

	dup := &models.Upload{Folder: "uploads", StorageKey: "uploads/a.jpg", Path: "/storage/uploads/a.jpg"}
	assert.ErrorIs(t, repo.Create(db, dup), ErrDuplicateKey)
}
