package models

import "gorm.io/datatypes"

// MediaItem - один элемент галереи портфолио
type MediaItem struct {
	Type MediaType `json:"type"`
	Path string    `json:"path"`
}

type Portfolio struct {
	Content
	Title       string                         `gorm:"size:200;not null" json:"title"`
	Slug        string                         `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Description *string                        `gorm:"type:text" json:"description"`
	Category    PortfolioCategory              `gorm:"size:20;not null;index" json:"category"`
	Media       datatypes.JSONSlice[MediaItem] `gorm:"not null" json:"media"`
	IsFeatured  bool                           `gorm:"not null;index" json:"is_featured"`
}
