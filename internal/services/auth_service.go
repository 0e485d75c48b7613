package services

import (
	"context"
	"errors"
	"time"

	"compro_backend/internal/auth"
	"compro_backend/internal/logger"
	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/services/dto"
	"compro_backend/internal/validator"
	"compro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	// loginTokenName - имя записи access_tokens для токенов, выданных через логин
	loginTokenName = "admin-token"

	passwordChangedMessage = "Password berhasil diubah. Silakan login ulang."
)

// AuthService - логин, проверка bearer токена, отзыв токенов, смена пароля.
type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// CurrentPrincipal - пользователь по токену. Любая проблема с токеном = ErrUnauthenticated.
	CurrentPrincipal(ctx context.Context, db *gorm.DB, token string) (*auth.Principal, error)

	// Logout отзывает только предъявленный токен
	Logout(ctx context.Context, db *gorm.DB, principal *auth.Principal) error

	// LogoutAll отзывает все токены пользователя
	LogoutAll(ctx context.Context, db *gorm.DB, principal *auth.Principal) (int64, error)

	ChangePassword(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.ChangePasswordRequest) (*dto.MessageResponse, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.AccessTokenRepository
	tokens    *auth.TokenManager
	validator *validator.Validator
	now       func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.AccessTokenRepository,
	tokens *auth.TokenManager,
	v *validator.Validator,
) AuthService {
	if v == nil {
		v = validator.New()
	}
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		validator: v,
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxWarn(ctx, "login failed: unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "login failed: wrong password", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now()
	record := &models.AccessToken{
		UserID:    user.ID,
		Name:      loginTokenName,
		ExpiresAt: s.tokens.ExpiresAt(now),
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role), record.ID, now, record.ExpiresAt)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "token_id", record.ID)
	return &dto.LoginResponse{Token: token, User: user}, nil
}

func (s *authService) CurrentPrincipal(ctx context.Context, db *gorm.DB, token string) (*auth.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	record, err := s.tokenRepo.FindByID(db, claims.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccessTokenNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	now := s.now()
	if record.UserID != userID || record.Expired(now) {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.tokenRepo.Touch(db, record.ID, now); err != nil {
		// last_used_at не критичен для аутентификации
		logger.CtxWithError(ctx, "failed to touch access token", err, "token_id", record.ID)
	}

	return &auth.Principal{User: user, TokenID: record.ID}, nil
}

func (s *authService) Logout(ctx context.Context, db *gorm.DB, principal *auth.Principal) error {
	if principal == nil || principal.TokenID == "" {
		return apperrors.ErrUnauthenticated
	}
	if err := s.tokenRepo.DeleteByID(db, principal.TokenID); err != nil {
		if errors.Is(err, repositories.ErrAccessTokenNotFound) {
			return apperrors.ErrUnauthenticated
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "user logged out", "user_id", principal.UserID(), "token_id", principal.TokenID)
	return nil
}

func (s *authService) LogoutAll(ctx context.Context, db *gorm.DB, principal *auth.Principal) (int64, error) {
	if principal == nil || principal.User == nil {
		return 0, apperrors.ErrUnauthenticated
	}
	revoked, err := s.tokenRepo.DeleteByUserID(db, principal.UserID())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "all tokens revoked", "user_id", principal.UserID(), "count", revoked)
	return revoked, nil
}

func (s *authService) ChangePassword(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	if principal == nil || principal.User == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, principal.UserID())
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return nil, apperrors.ErrIncorrectCurrentPassword()
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Новый пароль и отзыв всех токенов - одной транзакцией
	var revoked int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePassword(tx, user.ID, hash); err != nil {
			return err
		}
		n, err := s.tokenRepo.DeleteByUserID(tx, user.ID)
		revoked = n
		return err
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password changed", "user_id", user.ID, "revoked_tokens", revoked)
	return &dto.MessageResponse{Message: passwordChangedMessage}, nil
}

func (s *authService) validate(req interface{}) error {
	fields, err := s.validator.Fields(req)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if len(fields) > 0 {
		return apperrors.ValidationError(fields)
	}
	return nil
}
