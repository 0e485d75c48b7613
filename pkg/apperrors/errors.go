package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode
	Domain   string
	Message  string
	Details  map[string]string // ошибки по полям, "поле" -> "сообщение"
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New - базовый конструктор
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap - оборачивает существующую ошибку в AppError
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details map[string]string) *AppError {
	e.Details = details
	return e
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// --- ОБЩИЕ ХЕЛПЕРЫ ---

// InternalError оборачивает неизвестную системную ошибку
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError создает ошибку валидации (422) со списком полей
func ValidationError(fields map[string]string) *AppError {
	return New(CodeValidationFailed, "validation", summarize(fields), http.StatusUnprocessableEntity).WithDetails(fields)
}

// FieldError - ошибка валидации одного поля
func FieldError(field, message string) *AppError {
	return ValidationError(map[string]string{field: message})
}

// NewBadRequestError - тело запроса не удалось разобрать. Отдаем 422, как и остальные ошибки ввода.
func NewBadRequestError(message string) *AppError {
	return New(CodeBadRequest, "request", message, http.StatusUnprocessableEntity)
}

// summarize собирает короткое сообщение: первая ошибка + количество остальных
func summarize(fields map[string]string) string {
	if len(fields) == 0 {
		return "The given data was invalid."
	}
	first := ""
	for _, key := range sortedKeys(fields) {
		first = fields[key]
		break
	}
	if len(fields) == 1 {
		return first
	}
	return fmt.Sprintf("%s (and %d more errors)", first, len(fields)-1)
}
