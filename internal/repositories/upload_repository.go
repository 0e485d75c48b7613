package repositories

import (
	"errors"

	"compro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	FindByPath(db *gorm.DB, path string) (*models.Upload, error)

	// MissingPaths возвращает пути из списка, для которых нет записи в uploads
	MissingPaths(db *gorm.DB, paths []string) ([]string, error)
}

type uploadRepository struct{}

func NewUploadRepository() UploadRepository {
	return &uploadRepository{}
}

func (r *uploadRepository) Create(db *gorm.DB, upload *models.Upload) error {
	return translate(db.Create(upload).Error, ErrUploadNotFound)
}

func (r *uploadRepository) FindByPath(db *gorm.DB, path string) (*models.Upload, error) {
	var upload models.Upload
	if err := db.Where("path = ?", path).First(&upload).Error; err != nil {
		return nil, translate(err, ErrUploadNotFound)
	}
	return &upload, nil
}

func (r *uploadRepository) MissingPaths(db *gorm.DB, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	var found []string
	if err := db.Model(&models.Upload{}).Where("path IN ?", paths).Pluck("path", &found).Error; err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(found))
	for _, p := range found {
		known[p] = struct{}{}
	}

	var missing []string
	for _, p := range paths {
		if _, ok := known[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}
