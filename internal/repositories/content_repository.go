package repositories

import (
	"compro_backend/internal/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope - дополнительное условие запроса списка
type Scope = func(*gorm.DB) *gorm.DB

// ContentRepository - общий CRUD для записей сайта (HomeSection, WhyChoose, Client, Faq, Portfolio).
// Как и остальные репозитории, не хранит *gorm.DB: пул или транзакция передается в каждый метод.
type ContentRepository[M any] interface {
	// List возвращает записи, отсортированные по order ASC, id DESC.
	// Из filters применяется только IsActive, остальное - через scopes.
	List(db *gorm.DB, filters types.ListFilters, scopes ...Scope) ([]M, error)

	// ListActive - только is_active = true, в том же порядке
	ListActive(db *gorm.DB, scopes ...Scope) ([]M, error)

	FindByID(db *gorm.DB, id uint) (*M, error)
	Create(db *gorm.DB, item *M) error

	// Update применяет только переданные колонки и перечитывает запись
	Update(db *gorm.DB, item *M, changes map[string]interface{}) error

	// Delete - жесткое удаление, ErrRecordNotFound если записи нет
	Delete(db *gorm.DB, id uint) error
}

type contentRepository[M any] struct{}

func NewContentRepository[M any]() ContentRepository[M] {
	return &contentRepository[M]{}
}

// Ordered - order ASC, затем id DESC (новые выше среди равных order)
func Ordered(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
}

// ActiveOnly - публичные выборки
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func (r *contentRepository[M]) List(db *gorm.DB, filters types.ListFilters, scopes ...Scope) ([]M, error) {
	query := db.Model(new(M))
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	return r.find(query, scopes)
}

func (r *contentRepository[M]) ListActive(db *gorm.DB, scopes ...Scope) ([]M, error) {
	return r.find(db.Model(new(M)).Scopes(ActiveOnly), scopes)
}

func (r *contentRepository[M]) find(query *gorm.DB, scopes []Scope) ([]M, error) {
	items := make([]M, 0)
	if err := query.Scopes(scopes...).Scopes(Ordered).Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []M{}
	}
	return items, nil
}

func (r *contentRepository[M]) FindByID(db *gorm.DB, id uint) (*M, error) {
	item := new(M)
	if err := db.First(item, id).Error; err != nil {
		return nil, translate(err, ErrRecordNotFound)
	}
	return item, nil
}

func (r *contentRepository[M]) Create(db *gorm.DB, item *M) error {
	return translate(db.Create(item).Error, ErrRecordNotFound)
}

func (r *contentRepository[M]) Update(db *gorm.DB, item *M, changes map[string]interface{}) error {
	if len(changes) > 0 {
		if err := db.Model(item).Updates(changes).Error; err != nil {
			return translate(err, ErrRecordNotFound)
		}
	}
	// Перечитываем, чтобы вернуть актуальное состояние (updated_at и т.д.)
	return translate(db.First(item).Error, ErrRecordNotFound)
}

func (r *contentRepository[M]) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(new(M), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
