package dto

// Create-запросы: обязательные поля - значения, необязательные - указатели (nil = применить default).
// Update-запросы: все поля - указатели, nil = поле не передано и не меняется.

// ============================================
// HomeSection
// ============================================

type CreateHomeSectionRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	BackgroundImage string `json:"background_image" validate:"required,max=255"`
	Order           *int   `json:"order" validate:"omitempty,min=0"`
	IsActive        *bool  `json:"is_active"`
}

type UpdateHomeSectionRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=200"`
	BackgroundImage *string `json:"background_image" validate:"omitempty,min=1,max=255"`
	Order           *int    `json:"order" validate:"omitempty,min=0"`
	IsActive        *bool   `json:"is_active"`
}

// ============================================
// WhyChoose
// ============================================

type CreateWhyChooseRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	Order       *int   `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateWhyChooseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

// ============================================
// Client
// ============================================

type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Logo     string `json:"logo" validate:"required,max=255"`
	Order    *int   `json:"order" validate:"omitempty,min=0"`
	IsActive *bool  `json:"is_active"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=150"`
	Logo     *string `json:"logo" validate:"omitempty,min=1,max=255"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
}

// ============================================
// Faq
// ============================================

type CreateFaqRequest struct {
	Question string `json:"question" validate:"required,max=255"`
	Answer   string `json:"answer" validate:"required"`
	Order    *int   `json:"order" validate:"omitempty,min=0"`
	IsActive *bool  `json:"is_active"`
}

type UpdateFaqRequest struct {
	Question *string `json:"question" validate:"omitempty,min=1,max=255"`
	Answer   *string `json:"answer" validate:"omitempty,min=1"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
}

// ============================================
// Portfolio
// ============================================

type MediaItemRequest struct {
	Type string `json:"type" validate:"required,is-media-type"`
	Path string `json:"path" validate:"required,max=255"`
}

type CreatePortfolioRequest struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Slug        string             `json:"slug" validate:"required,max=220"`
	Description *string            `json:"description"`
	Category    *string            `json:"category" validate:"omitempty,is-portfolio-category"`
	Media       []MediaItemRequest `json:"media" validate:"required,min=1,dive"`
	IsFeatured  *bool              `json:"is_featured"`
	Order       *int               `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool              `json:"is_active"`
}

type UpdatePortfolioRequest struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Slug        *string             `json:"slug" validate:"omitempty,min=1,max=220"`
	Description *string             `json:"description"`
	Category    *string             `json:"category" validate:"omitempty,is-portfolio-category"`
	Media       *[]MediaItemRequest `json:"media" validate:"omitempty,min=1,dive"`
	IsFeatured  *bool               `json:"is_featured"`
	Order       *int                `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool               `json:"is_active"`
}
