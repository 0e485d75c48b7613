package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound возвращается, когда запись контента не найдена
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey - нарушение уникального индекса (slug, email, path)
	ErrDuplicateKey = errors.New("duplicate key")
)

// translate приводит ошибки GORM к ошибкам репозитория
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
