package auth

import (
	"testing"

	"compro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))
	assert.False(t, CheckPasswordHash("password123", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

func TestPrincipal(t *testing.T) {
	var empty *Principal
	assert.Equal(t, uint(0), empty.UserID())
	assert.False(t, empty.IsAdmin())

	admin := &Principal{User: &models.User{BaseModel: models.BaseModel{ID: 7}, Role: models.UserRoleAdmin}, TokenID: "jti"}
	assert.Equal(t, uint(7), admin.UserID())
	assert.Equal(t, "7", admin.UserIDString())
	assert.True(t, admin.IsAdmin())

	editor := &Principal{User: &models.User{Role: models.UserRoleEditor}}
	assert.False(t, editor.IsAdmin())
}
