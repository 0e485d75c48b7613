package apperrors

import (
	"maps"
	"net/http"
	"slices"
)

/*
Фабрики и предопределенные ошибки домена.
*/

// ErrNotFound - запись не найдена (404). label - человекочитаемое имя ресурса.
func ErrNotFound(label string) *AppError {
	return New(CodeNotFound, "resource", label+" not found", http.StatusNotFound)
}

// ErrUnauthenticated - токен отсутствует, поврежден или отозван.
var ErrUnauthenticated = New(
	CodeUnauthenticated,
	"auth",
	"Unauthenticated.",
	http.StatusUnauthorized,
)

// ErrForbidden - пользователь аутентифицирован, но не администратор.
var ErrForbidden = New(
	CodeForbidden,
	"auth",
	"This action is unauthorized.",
	http.StatusForbidden,
)

// ErrInvalidCredentials - одинаковый ответ для неизвестного email и неверного пароля.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnprocessableEntity,
)

// ErrIncorrectCurrentPassword - текущий пароль не совпал при смене пароля.
func ErrIncorrectCurrentPassword() *AppError {
	return New(
		CodeIncorrectCurrentPassword,
		"auth",
		"Current password salah",
		http.StatusUnprocessableEntity,
	).WithDetails(map[string]string{"current_password": "Current password salah"})
}

// ErrStorage - не удалось сохранить файл в хранилище
func ErrStorage(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Failed to store file", http.StatusInternalServerError)
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
