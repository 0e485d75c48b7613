package validator

import (
	"log"
	"regexp"

	"compro_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации - ошибка конфигурации, запускаться нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// -----------------------------------------------------------------
	// Правила, основанные на 'statuses.go'
	// -----------------------------------------------------------------
	mustRegister("is-media-type", validateMediaType)
	mustRegister("is-portfolio-category", validatePortfolioCategory)
	mustRegister("is-user-role", validateUserRole)

	// 'is-folder': логическая папка для загрузки ("clients", "portfolio/2024")
	mustRegister("is-folder", validateFolder)
}

// --- Функции валидации ---
// Пустые значения не проверяем, для этого есть 'required'

func validateMediaType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.MediaType(value).Valid()
}

func validatePortfolioCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PortfolioCategory(value).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

var folderPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(/[A-Za-z0-9_-]+)*$`)

func validateFolder(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return len(value) <= 100 && folderPattern.MatchString(value)
}
