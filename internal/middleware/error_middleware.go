package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Validation errors
// are localized with the request's locale when Locale middleware ran.
// Unexpected errors carry debug info outside release mode.
func HandleAPIError(c *gin.Context, err error) {
	if vErr, ok := apperrors.AsValidationError(err); ok {
		message := vErr.Error()
		if catalog, ok := CatalogFrom(c); ok {
			message = catalog.ValidationMessage(LocaleFrom(c), vErr)
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
			WithField(vErr.Field).
			WithSeverity(dto.ErrorSeverityWarning).
			WithDetails(gin.H{"reason": vErr.Reason, "message": vErr.Message})
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found").WithDetails("The session has ended or expired; start a new one"),
		))
	case errors.Is(err, apperrors.ErrNoResult):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoResult, "No GPA has been calculated yet").WithSeverity(dto.ErrorSeverityInfo),
		))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found").WithDetails(err.Error()),
		))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		))
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request").WithDetails(err.Error()),
		))
	default:
		_ = c.Error(err)
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		if gin.Mode() != gin.ReleaseMode {
			errorDetail = errorDetail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
