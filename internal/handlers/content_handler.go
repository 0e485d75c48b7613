package handlers

import (
	"net/http"

	"compro_backend/internal/models"
	"compro_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ============================================
// CONTENT HANDLER (admin CRUD)
// ============================================

// ContentHandler - один и тот же CRUD для всех видов записей сайта
type ContentHandler[M models.Entity, C any, U any] struct {
	*BaseHandler
	path    string
	service services.ContentService[M, C, U]
}

func NewContentHandler[M models.Entity, C any, U any](base *BaseHandler, path string, service services.ContentService[M, C, U]) *ContentHandler[M, C, U] {
	return &ContentHandler[M, C, U]{
		BaseHandler: base,
		path:        path,
		service:     service,
	}
}

// ============================================
// ROUTES
// ============================================

func (h *ContentHandler[M, C, U]) RegisterRoutes(g RouteGroups) {
	group := g.Admin.Group(h.path)
	{
		group.GET("", h.List)
		group.POST("", h.Store)
		group.GET("/:id", h.Show)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Destroy)
	}
}

// ============================================
// HANDLERS
// ============================================

// GET /:resource
// List godoc
// @Summary Список записей раздела
// @Description resource: home-sections, why-chooses, clients, faqs, portfolios
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Раздел"
// @Param is_active query bool false "Фильтр по активности"
// @Param is_featured query bool false "Только для portfolios"
// @Param category query string false "Только для portfolios"
// @Param q query string false "Поиск по title и slug, только для portfolios"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /{resource} [get]
func (h *ContentHandler[M, C, U]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), h.GetDB(c), ParseListFilters(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GET /:resource/:id
// Show godoc
// @Summary Запись раздела по ID
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Раздел"
// @Param id path int true "ID записи"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /{resource}/{id} [get]
func (h *ContentHandler[M, C, U]) Show(c *gin.Context) {
	id, err := ParseID(c, h.service.Label())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// POST /:resource
// Store godoc
// @Summary Создать запись раздела
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Раздел"
// @Success 201 {object} map[string]interface{} "message и data"
// @Failure 422 {object} apperrors.ErrorResponse "Ошибки полей"
// @Router /{resource} [post]
func (h *ContentHandler[M, C, U]) Store(c *gin.Context) {
	req := new(C)
	if !h.BindJSON(c, req) {
		return
	}

	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": h.service.Label() + " created",
		"data":    item,
	})
}

// PUT|PATCH /:resource/:id
// Update godoc
// @Summary Частично обновить запись раздела
// @Description Меняются только переданные поля
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Раздел"
// @Param id path int true "ID записи"
// @Success 200 {object} map[string]interface{} "message и data"
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 422 {object} apperrors.ErrorResponse "Ошибки полей"
// @Router /{resource}/{id} [put]
// @Router /{resource}/{id} [patch]
func (h *ContentHandler[M, C, U]) Update(c *gin.Context) {
	id, err := ParseID(c, h.service.Label())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	req := new(U)
	if !h.BindJSON(c, req) {
		return
	}

	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.service.Label() + " updated",
		"data":    item,
	})
}

// DELETE /:resource/:id
// Destroy godoc
// @Summary Удалить запись раздела
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Раздел"
// @Param id path int true "ID записи"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /{resource}/{id} [delete]
func (h *ContentHandler[M, C, U]) Destroy(c *gin.Context) {
	id, err := ParseID(c, h.service.Label())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.service.Label() + " deleted"})
}
