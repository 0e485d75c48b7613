package apperrors

import (
	"log/slog"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    ErrorCode         `json:"code"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.ErrorContext(c.Request.Context(), "server error", "error", appErr.Error())
	}

	message := appErr.Message
	if appErr.HTTPCode >= 500 && h.Debug && appErr.Err != nil {
		// В debug-режиме отдаем причину, в проде - только общий текст
		message = appErr.Message + ": " + appErr.Err.Error()
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Message: message,
		Code:    appErr.Code,
		Errors:  appErr.Details,
	})
}

var debugMode atomic.Bool

// SetDebug включает вывод причин 5xx ошибок (только для development)
func SetDebug(debug bool) {
	debugMode.Store(debug)
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debugMode.Load()}
	handler.HandleGinError(c, err)
}
