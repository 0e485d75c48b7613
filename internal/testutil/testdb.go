// Package testutil - общие хелперы для тестов: БД SQLite в памяти и тестовые пользователи.
package testutil

import (
	"fmt"
	"testing"

	"compro_backend/database"
	"compro_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB создает отдельную БД в памяти с примененными миграциями.
// Закрывается автоматически по окончании теста.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err, "Не удалось открыть тестовую БД")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Одно соединение: все запросы видят одну и ту же БД в памяти
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "Не удалось выполнить AutoMigrate для тестовой БД")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateUser создает пользователя с bcrypt хешем пароля. MinCost - чтобы тесты были быстрыми.
func CreateUser(t testing.TB, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err, "Не удалось хешировать пароль")

	user := &models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", email)
	return user
}

// CreateAdmin - администратор с паролем "password123"
func CreateAdmin(t testing.TB, db *gorm.DB) *models.User {
	t.Helper()
	return CreateUser(t, db, fmt.Sprintf("admin_%s@test.com", uuid.NewString()[:8]), DefaultPassword, models.UserRoleAdmin)
}

// CreateEditor - пользователь без роли admin
func CreateEditor(t testing.TB, db *gorm.DB) *models.User {
	t.Helper()
	return CreateUser(t, db, fmt.Sprintf("editor_%s@test.com", uuid.NewString()[:8]), DefaultPassword, models.UserRoleEditor)
}

const DefaultPassword = "password123"

// Ptr - указатель на значение, для необязательных полей запросов
func Ptr[T any](v T) *T {
	return &v
}
