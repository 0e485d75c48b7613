package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"compro_backend/internal/auth"
	"compro_backend/internal/logger"
	"compro_backend/internal/middleware"
	"compro_backend/internal/types"
	"compro_backend/pkg/apperrors"
	"compro_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// RouteGroups - группы маршрутов по уровню доступа
type RouteGroups struct {
	Public        *gin.RouterGroup
	Authenticated *gin.RouterGroup
	Admin         *gin.RouterGroup
}

// ============================================================================
// 2. DB и Principal из контекста
// ============================================================================

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context.
// Вызывается в каждом хендлере, который обращается к сервисам.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// GetPrincipal - пользователь, установленный AuthMiddleware. Пишет 401, если его нет.
func (h *BaseHandler) GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: principal not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return nil, false
	}
	return principal, true
}

// ============================================================================
// 3. Привязка тела запроса
// ============================================================================

// BindJSON разбирает JSON тело. Валидация полей выполняется в сервисах,
// чтобы все ошибки (включая проверки по БД) вернулись одним ответом.
// Пустое тело - пустой объект.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	// Тело сохраняется в контексте, чтобы найти индекс поля с ошибкой типа
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if raw, ok := c.Get(gin.BodyBytesKey); ok {
			if body, ok := raw.([]byte); ok {
				if indexed, found := fieldPathAt(body, typeErr.Offset); found {
					field = indexed
				}
			}
		}
		apperrors.HandleError(c, apperrors.FieldError(field,
			fmt.Sprintf("The %s field must be a valid %s.", field, jsonKind(typeErr.Type.Kind().String()))))
		return false
	}

	apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
	return false
}

func jsonKind(kind string) string {
	switch kind {
	case "int", "int64", "uint", "uint64":
		return "integer"
	case "bool":
		return "boolean"
	case "slice":
		return "array"
	case "struct", "map":
		return "object"
	default:
		return kind
	}
}

// ============================================================================
// 4. Обработчики ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 5. Функции парсинга
// ============================================================================

// ParseID - числовой :id. Нечисловой или нулевой id - NotFound.
func ParseID(c *gin.Context, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrNotFound(label)
	}
	return uint(id), nil
}

// ParseListFilters - is_active, is_featured, category, q из query string
func ParseListFilters(c *gin.Context) types.ListFilters {
	return types.ListFilters{
		IsActive:   types.ParseBoolFilter(c.Query("is_active")),
		IsFeatured: types.ParseBoolFilter(c.Query("is_featured")),
		Category:   c.Query("category"),
		Search:     c.Query("q"),
	}
}
