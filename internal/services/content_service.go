package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"compro_backend/internal/logger"
	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/types"
	"compro_backend/internal/validator"
	"compro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ============================================
// ОБЩИЙ CRUD СЕРВИС ДЛЯ КОНТЕНТА САЙТА
// ============================================

// ContentService - list/get/create/update/delete для одного вида записей.
// M - модель, C - запрос на создание, U - запрос на частичное обновление.
type ContentService[M models.Entity, C any, U any] interface {
	// Label - имя ресурса для сообщений ("FAQ", "Home section")
	Label() string

	List(ctx context.Context, db *gorm.DB, filters types.ListFilters) ([]M, error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*M, error)
	Create(ctx context.Context, db *gorm.DB, req *C) (*M, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *U) (*M, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

// ContentSchema описывает отличия одного вида записей: defaults, частичное обновление,
// дополнительные проверки.
type ContentSchema[M models.Entity, C any, U any] struct {
	Resource string
	Label    string

	// Build создает модель из запроса, применяя значения по умолчанию
	Build func(req *C) *M

	// Changes - колонки для UPDATE, только из переданных полей
	Changes func(req *U) map[string]interface{}

	// ValidateCreate / ValidateUpdate дописывают ошибки в fields (уникальность slug и т.п.)
	ValidateCreate func(db *gorm.DB, req *C, fields map[string]string) error
	ValidateUpdate func(db *gorm.DB, current *M, req *U, fields map[string]string) error

	// CreateReferences / UpdateReferences - пути к файлам в запросе: ключ ошибки -> путь
	CreateReferences func(req *C) map[string]string
	UpdateReferences func(req *U) map[string]string

	// UniqueField - поле, на которое указывает нарушение уникального индекса
	UniqueField string

	// Search заменяет стандартную выборку списка
	Search func(db *gorm.DB, filters types.ListFilters) ([]M, error)
}

// ContentOptions - общие зависимости для всех ContentService
type ContentOptions struct {
	Validator  *validator.Validator
	UploadRepo repositories.UploadRepository

	// EnforceReferences - пути к файлам должны ссылаться на записи в uploads
	EnforceReferences bool
}

type contentService[M models.Entity, C any, U any] struct {
	repo       repositories.ContentRepository[M]
	uploadRepo repositories.UploadRepository
	validator  *validator.Validator
	schema     ContentSchema[M, C, U]
	enforceRef bool
}

func NewContentService[M models.Entity, C any, U any](
	repo repositories.ContentRepository[M],
	opts ContentOptions,
	schema ContentSchema[M, C, U],
) ContentService[M, C, U] {
	if opts.Validator == nil {
		opts.Validator = validator.New()
	}
	return &contentService[M, C, U]{
		repo:       repo,
		uploadRepo: opts.UploadRepo,
		validator:  opts.Validator,
		schema:     schema,
		enforceRef: opts.EnforceReferences && opts.UploadRepo != nil,
	}
}

func (s *contentService[M, C, U]) Label() string {
	return s.schema.Label
}

func (s *contentService[M, C, U]) List(ctx context.Context, db *gorm.DB, filters types.ListFilters) ([]M, error) {
	var (
		items []M
		err   error
	)
	if s.schema.Search != nil {
		items, err = s.schema.Search(db, filters)
	} else {
		items, err = s.repo.List(db, filters)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *contentService[M, C, U]) Get(ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	item, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, s.handleError(err)
	}
	return item, nil
}

func (s *contentService[M, C, U]) Create(ctx context.Context, db *gorm.DB, req *C) (*M, error) {
	fields, err := s.validator.Fields(req)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if s.schema.ValidateCreate != nil {
		if err := s.schema.ValidateCreate(db, req, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if s.enforceRef && s.schema.CreateReferences != nil {
		if err := s.checkReferences(db, s.schema.CreateReferences(req), fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.ValidationError(fields)
	}

	item := s.schema.Build(req)
	if err := s.repo.Create(db, item); err != nil {
		return nil, s.handleError(err)
	}

	logger.CtxInfo(ctx, "content created", "resource", s.schema.Resource, "id", (*item).GetID())
	return item, nil
}

func (s *contentService[M, C, U]) Update(ctx context.Context, db *gorm.DB, id uint, req *U) (*M, error) {
	current, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, s.handleError(err)
	}

	fields, err := s.validator.Fields(req)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if s.schema.ValidateUpdate != nil {
		if err := s.schema.ValidateUpdate(db, current, req, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if s.enforceRef && s.schema.UpdateReferences != nil {
		if err := s.checkReferences(db, s.schema.UpdateReferences(req), fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.ValidationError(fields)
	}

	changes := s.schema.Changes(req)
	if err := s.repo.Update(db, current, changes); err != nil {
		return nil, s.handleError(err)
	}

	logger.CtxInfo(ctx, "content updated", "resource", s.schema.Resource, "id", id, "fields", len(changes))
	return current, nil
}

func (s *contentService[M, C, U]) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		return s.handleError(err)
	}
	logger.CtxInfo(ctx, "content deleted", "resource", s.schema.Resource, "id", id)
	return nil
}

// checkReferences - каждый непустой путь должен быть в реестре uploads
func (s *contentService[M, C, U]) checkReferences(db *gorm.DB, refs map[string]string, fields map[string]string) error {
	byPath := make(map[string][]string)
	paths := make([]string, 0, len(refs))
	for key, path := range refs {
		if path == "" {
			continue
		}
		if _, invalid := fields[key]; invalid {
			continue
		}
		if _, seen := byPath[path]; !seen {
			paths = append(paths, path)
		}
		byPath[path] = append(byPath[path], key)
	}
	if len(paths) == 0 {
		return nil
	}
	sort.Strings(paths)

	missing, err := s.uploadRepo.MissingPaths(db, paths)
	if err != nil {
		return err
	}
	for _, path := range missing {
		for _, key := range byPath[path] {
			fields[key] = fmt.Sprintf("The %s must reference an uploaded file.", key)
		}
	}
	return nil
}

func (s *contentService[M, C, U]) handleError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrRecordNotFound):
		return apperrors.ErrNotFound(s.schema.Label)
	case errors.Is(err, repositories.ErrDuplicateKey) && s.schema.UniqueField != "":
		return apperrors.FieldError(s.schema.UniqueField, takenMessage(s.schema.UniqueField))
	default:
		return apperrors.InternalError(err)
	}
}

func takenMessage(field string) string {
	return fmt.Sprintf("The %s has already been taken.", field)
}

// ============================================
// Хелперы для схем
// ============================================

// newContent - order = 0 и is_active = true, если не переданы
func newContent(order *int, isActive *bool) models.Content {
	content := models.Content{IsActive: true}
	if order != nil {
		content.Order = *order
	}
	if isActive != nil {
		content.IsActive = *isActive
	}
	return content
}

func contentChanges(order *int, isActive *bool) map[string]interface{} {
	changes := make(map[string]interface{})
	setIf(changes, "order", order)
	setIf(changes, "is_active", isActive)
	return changes
}

func setIf[T any](changes map[string]interface{}, column string, value *T) {
	if value != nil {
		changes[column] = *value
	}
}
