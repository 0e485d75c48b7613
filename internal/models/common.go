package models

import "time"

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Content - общие поля всех записей сайта, управляемых из админки
type Content struct {
	BaseModel
	Order    int  `gorm:"column:order;not null;index" json:"order"`
	IsActive bool `gorm:"not null;index" json:"is_active"`
}

func (m BaseModel) GetID() uint {
	return m.ID
}

// Entity - любая модель с числовым первичным ключом
type Entity interface {
	GetID() uint
}
