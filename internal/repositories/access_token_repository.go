package repositories

import (
	"errors"
	"time"

	"compro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrAccessTokenNotFound - токен не найден (отозван или никогда не выдавался)
	ErrAccessTokenNotFound = errors.New("access token not found")
)

// AccessTokenRepository - выданные bearer токены. Удаление записи = отзыв токена.
type AccessTokenRepository interface {
	Create(db *gorm.DB, token *models.AccessToken) error
	FindByID(db *gorm.DB, id string) (*models.AccessToken, error)

	// DeleteByID отзывает один токен
	DeleteByID(db *gorm.DB, id string) error

	// DeleteByUserID отзывает все токены пользователя, возвращает количество
	DeleteByUserID(db *gorm.DB, userID uint) (int64, error)

	// Touch обновляет last_used_at
	Touch(db *gorm.DB, id string, at time.Time) error
}

type accessTokenRepository struct{}

func NewAccessTokenRepository() AccessTokenRepository {
	return &accessTokenRepository{}
}

func (r *accessTokenRepository) Create(db *gorm.DB, token *models.AccessToken) error {
	return db.Create(token).Error
}

func (r *accessTokenRepository) FindByID(db *gorm.DB, id string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := db.Where("id = ?", id).First(&token).Error; err != nil {
		return nil, translate(err, ErrAccessTokenNotFound)
	}
	return &token, nil
}

func (r *accessTokenRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.AccessToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccessTokenNotFound
	}
	return nil
}

func (r *accessTokenRepository) DeleteByUserID(db *gorm.DB, userID uint) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.AccessToken{})
	return result.RowsAffected, result.Error
}

func (r *accessTokenRepository) Touch(db *gorm.DB, id string, at time.Time) error {
	return db.Model(&models.AccessToken{}).Where("id = ?", id).Update("last_used_at", at).Error
}
