package types

import "strings"

// ParseBoolFilter разбирает булево значение из query string в три состояния.
// nil - фильтр отсутствует: пустая строка или значение, которое не удалось разобрать.
func ParseBoolFilter(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		v := true
		return &v
	case "0", "false", "off", "no":
		v := false
		return &v
	default:
		return nil
	}
}

// ListFilters - фильтры списков в админке.
// IsFeatured, Category и Search применяются только к портфолио.
type ListFilters struct {
	IsActive   *bool
	IsFeatured *bool
	Category   string // "" или "all" - без фильтра
	Search     string // подстрока title или slug, без учета регистра
}

// HasCategory - задан ли фильтр по категории
func HasCategory(category string) bool {
	return category != "" && category != "all"
}
