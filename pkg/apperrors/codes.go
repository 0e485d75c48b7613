package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Аутентификация и авторизация
	CodeUnauthenticated          ErrorCode = "UNAUTHENTICATED"
	CodeForbidden                ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials       ErrorCode = "INVALID_CREDENTIALS"
	CodeIncorrectCurrentPassword ErrorCode = "INCORRECT_CURRENT_PASSWORD"
)
