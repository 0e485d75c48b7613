package models

type UserRole string
type PortfolioCategory string
type MediaType string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"

	PortfolioCategoryDesign      PortfolioCategory = "design"
	PortfolioCategoryPhotography PortfolioCategory = "photography"
	PortfolioCategoryVideo       PortfolioCategory = "video"
	PortfolioCategoryBranding    PortfolioCategory = "branding"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypePDF   MediaType = "pdf"
)

// CategoryAll - значение фильтра, означающее "без фильтра по категории"
const CategoryAll = "all"

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEditor:
		return true
	}
	return false
}

func (c PortfolioCategory) Valid() bool {
	switch c {
	case PortfolioCategoryDesign, PortfolioCategoryPhotography, PortfolioCategoryVideo, PortfolioCategoryBranding:
		return true
	}
	return false
}

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypePDF:
		return true
	}
	return false
}
