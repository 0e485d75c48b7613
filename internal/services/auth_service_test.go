package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"compro_backend/internal/auth"
	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/services/dto"
	"compro_backend/internal/testutil"
	"compro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuthService(ttl time.Duration) *authService {
	svc := NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewAccessTokenRepository(),
		auth.NewTokenManager(auth.TokenConfig{Secret: "test-secret", TTL: ttl}),
		nil,
	)
	return svc.(*authService)
}

func login(t *testing.T, svc AuthService, db *gorm.DB, email string) *dto.LoginResponse {
	t.Helper()
	resp, err := svc.Login(context.Background(), db, &dto.LoginRequest{Email: email, Password: testutil.DefaultPassword})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(time.Hour)
	admin := testutil.CreateAdmin(t, db)

	resp := login(t, svc, db, admin.Email)
	assert.Equal(t, admin.ID, resp.User.ID)

	var tokens []models.AccessToken
	require.NoError(t, db.Where("user_id = ?", admin.ID).Find(&tokens).Error)
	require.Len(t, tokens, 1)
	assert.Equal(t, "admin-token", tokens[0].Name)
	assert.NotNil(t, tokens[0].ExpiresAt)

	// Неизвестный email и неверный пароль - одинаковый ответ
	_, err := svc.Login(ctx, db, &dto.LoginRequest{Email: admin.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: "not-an-email"})
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Contains(t, appErr.Details, "email")
	assert.Contains(t, appErr.Details, "password")
}

func TestAuthService_CurrentPrincipal(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(0)
	editor := testutil.CreateEditor(t, db)

	resp := login(t, svc, db, editor.Email)

	principal, err := svc.CurrentPrincipal(ctx, db, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, editor.ID, principal.UserID())
	assert.False(t, principal.IsAdmin())
	assert.NotEmpty(t, principal.TokenID)

	record, err := repositories.NewAccessTokenRepository().FindByID(db, principal.TokenID)
	require.NoError(t, err)
	assert.NotNil(t, record.LastUsedAt)
	assert.Nil(t, record.ExpiresAt)

	_, err = svc.CurrentPrincipal(ctx, db, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	other := auth.NewTokenManager(auth.TokenConfig{Secret: "other-secret"})
	forged, err := other.Generate(editor.ID, "admin", principal.TokenID, time.Now(), nil)
	require.NoError(t, err)
	_, err = svc.CurrentPrincipal(ctx, db, forged)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_CurrentPrincipal_TokenOfAnotherUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(time.Hour)
	admin := testutil.CreateAdmin(t, db)
	editor := testutil.CreateEditor(t, db)

	resp := login(t, svc, db, editor.Email)
	principal, err := svc.CurrentPrincipal(ctx, db, resp.Token)
	require.NoError(t, err)

	// Подписанный токен с чужим jti не принимается
	forged, err := svc.tokens.Generate(admin.ID, "admin", principal.TokenID, time.Now(), nil)
	require.NoError(t, err)
	_, err = svc.CurrentPrincipal(ctx, db, forged)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_ExpiredRecord(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(time.Hour)
	admin := testutil.CreateAdmin(t, db)

	resp := login(t, svc, db, admin.Email)

	// JWT еще валиден, но запись в access_tokens уже истекла
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err := svc.CurrentPrincipal(ctx, db, resp.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(time.Hour)
	admin := testutil.CreateAdmin(t, db)

	first := login(t, svc, db, admin.Email)
	second := login(t, svc, db, admin.Email)

	principal, err := svc.CurrentPrincipal(ctx, db, first.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, db, principal))

	_, err = svc.CurrentPrincipal(ctx, db, first.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// Другие токены пользователя продолжают работать
	_, err = svc.CurrentPrincipal(ctx, db, second.Token)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Logout(ctx, db, principal), apperrors.ErrUnauthenticated)
	assert.ErrorIs(t, svc.Logout(ctx, db, nil), apperrors.ErrUnauthenticated)
}

func TestAuthService_LogoutAll(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(time.Hour)
	admin := testutil.CreateAdmin(t, db)
	editor := testutil.CreateEditor(t, db)

	tokens := []string{login(t, svc, db, admin.Email).Token, login(t, svc, db, admin.Email).Token}
	editorToken := login(t, svc, db, editor.Email).Token

	principal, err := svc.CurrentPrincipal(ctx, db, tokens[0])
	require.NoError(t, err)

	revoked, err := svc.LogoutAll(ctx, db, principal)
	require.NoError(t, err)
	assert.Equal(t, int64(2), revoked)

	for _, token := range tokens {
		_, err := svc.CurrentPrincipal(ctx, db, token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	}
	_, err = svc.CurrentPrincipal(ctx, db, editorToken)
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := newTestAuthService(time.Hour)
	admin := testutil.CreateAdmin(t, db)

	first := login(t, svc, db, admin.Email)
	second := login(t, svc, db, admin.Email)
	principal, err := svc.CurrentPrincipal(ctx, db, first.Token)
	require.NoError(t, err)

	_, err = svc.ChangePassword(ctx, db, principal, &dto.ChangePasswordRequest{
		CurrentPassword:      "wrong-password",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Equal(t, apperrors.CodeIncorrectCurrentPassword, appErr.Code)
	assert.Equal(t, "Current password salah", appErr.Details["current_password"])

	_, err = svc.ChangePassword(ctx, db, principal, &dto.ChangePasswordRequest{
		CurrentPassword:      testutil.DefaultPassword,
		Password:             "new-password",
		PasswordConfirmation: "other-password",
	})
	appErr = requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Contains(t, appErr.Details, "password_confirmation")

	resp, err := svc.ChangePassword(ctx, db, principal, &dto.ChangePasswordRequest{
		CurrentPassword:      testutil.DefaultPassword,
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "Password berhasil diubah. Silakan login ulang.", resp.Message)

	// Все токены отозваны, включая текущий
	for _, token := range []string{first.Token, second.Token} {
		_, err := svc.CurrentPrincipal(ctx, db, token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	}

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: admin.Email, Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: admin.Email, Password: "new-password"})
	assert.NoError(t, err)
}
