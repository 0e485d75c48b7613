package handlers

import (
	"errors"
	"net/http"

	"compro_backend/internal/logger"
	"compro_backend/internal/services"
	"compro_backend/internal/services/dto"
	"compro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================
// UPLOAD HANDLER
// ============================================

// multipartOverhead - запас на границы и поля формы сверх лимита файла
const multipartOverhead = 1 << 20

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(g RouteGroups) {
	g.Admin.POST("/upload", h.Upload)
}

// POST /upload
// Upload godoc
// @Summary Загрузить файл
// @Description Multipart поле "file" и необязательное "folder". Возвращает публичный путь файла
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл"
// @Param folder formData string false "Папка, по умолчанию uploads"
// @Success 200 {object} dto.UploadResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 422 {object} apperrors.ErrorResponse "Нет файла или превышен размер"
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	maxSize := h.uploadService.MaxSize()
	if c.Request.ContentLength > maxSize+multipartOverhead {
		apperrors.HandleError(c, apperrors.FieldError("file", services.FileTooLargeMessage(maxSize)))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartOverhead)

	var req dto.UploadRequest

	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		file, openErr := fileHeader.Open()
		if openErr != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to open uploaded file", openErr)
			apperrors.HandleError(c, apperrors.FieldError("file", "The file failed to upload."))
			return
		}
		defer file.Close()

		req.File = file
		req.OriginalName = fileHeader.Filename
		req.Size = fileHeader.Size
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// Файла нет - сервис вернет ошибку поля вместе с остальными
		logger.CtxDebug(c.Request.Context(), "No file in upload request", "error", err.Error())
	case isTooLarge(err):
		apperrors.HandleError(c, apperrors.FieldError("file", services.FileTooLargeMessage(maxSize)))
		return
	default:
		logger.CtxWithError(c.Request.Context(), "Failed to parse upload form", err)
		apperrors.HandleError(c, apperrors.FieldError("file", "The file failed to upload."))
		return
	}
	req.Folder = c.PostForm("folder")

	response, err := h.uploadService.Store(c.Request.Context(), h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
