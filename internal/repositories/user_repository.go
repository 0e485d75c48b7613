package repositories

import (
	"errors"
	"strings"

	"compro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	UpdatePassword(db *gorm.DB, userID uint, passwordHash string) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return &user, nil
}

// FindByEmail - email сравнивается без учета регистра
func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	err := translate(db.Create(user).Error, ErrUserNotFound)
	if errors.Is(err, ErrDuplicateKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *userRepository) UpdatePassword(db *gorm.DB, userID uint, passwordHash string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
