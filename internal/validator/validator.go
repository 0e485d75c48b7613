package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError - кастомный тип ошибки, который содержит
// карту ошибок "поле" -> "сообщение".
type ValidationError struct {
	Errors map[string]string
}

// Error реализует стандартный интерфейс error.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errMsgs := make([]string, 0, len(fields))
	for _, field := range fields {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator - обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New создает новый экземпляр Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имена полей в ошибках берем из JSON-тегов (или form-тегов для multipart)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "" {
			tag = fld.Tag.Get("form")
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate выполняет валидацию переданной структуры.
// Если есть ошибки, возвращает *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	fields, err := v.Fields(i)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &ValidationError{Errors: fields}
	}
	return nil
}

// Fields возвращает все ошибки валидации в виде карты (пустая карта - ошибок нет).
// error возвращается только для ошибок самого валидатора.
func (v *Validator) Fields(i interface{}) (map[string]string, error) {
	fields := make(map[string]string)

	err := v.validate.Struct(i)
	if err == nil {
		return fields, nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	for _, fe := range validationErrors {
		key := FieldKey(fe.Namespace())
		if _, exists := fields[key]; exists {
			continue
		}
		fields[key] = getErrorMessage(key, fe)
	}
	return fields, nil
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// FieldKey превращает namespace валидатора ("CreatePortfolioRequest.media[0].type")
// в ключ ответа ("media.0.type").
func FieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexPattern.ReplaceAllString(namespace, ".$1")
}

func getErrorMessage(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", label)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			if fe.Param() == "1" {
				return fmt.Sprintf("The %s field is required.", label)
			}
			return fmt.Sprintf("The %s must be at least %s characters.", label, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s must have at least %s items.", label, fe.Param())
		default:
			return fmt.Sprintf("The %s must be at least %s.", label, fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must not be greater than %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("The %s must not be greater than %s.", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s does not match.", label)
	case "oneof", "is-media-type", "is-portfolio-category", "is-user-role":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "is-folder":
		return fmt.Sprintf("The %s may only contain letters, numbers, dashes, underscores and slashes.", label)
	default:
		return fmt.Sprintf("The %s field is invalid (failed on '%s' tag).", label, fe.Tag())
	}
}
