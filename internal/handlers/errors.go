package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidIdentifier),
		errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes the error body. Client errors echo the cause; server
// errors only echo failMsg and are logged at error level.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	status := statusFor(err)
	switch {
	case status == http.StatusServiceUnavailable:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": apperrors.ErrStorageUnavailable.Error()})
	case status >= http.StatusInternalServerError:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failMsg})
	default:
		logger.Warn(failMsg, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// respondBindError answers a request body or query that failed gin binding.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
