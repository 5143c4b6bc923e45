package utils

import (
	"errors"
	"net/http"

	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/logging"
	"leadportaal/internal/service"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s: %v", message, err)
}

// statusForCode maps the API error codes onto HTTP status codes
func statusForCode(code common.ErrorCode) int {
	switch code {
	case common.ErrCodeValidation, common.ErrCodeBadRequest:
		return http.StatusBadRequest
	case common.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrCodeForbidden:
		return http.StatusForbidden
	case common.ErrCodeNotFound:
		return http.StatusNotFound
	case common.ErrCodeConflict:
		return http.StatusConflict
	case common.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case common.ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError is a utility function for consistent error handling across the API
// It ensures sensitive error details are only exposed in non-production environments
func HandleAPIError(c *gin.Context, err error, code common.ErrorCode, message string) {
	status := statusForCode(code)

	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	// In production, don't expose error details
	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}

// HandleServiceError translates service layer sentinels into API responses.
// Anything unrecognized is treated as an internal error.
func HandleServiceError(c *gin.Context, err error) {
	var fieldErrs *service.FieldErrors

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(
			common.ErrCodeValidation,
			"Niet alle verplichte velden zijn ingevuld of geldig",
			gin.H{"missing": fieldErrs.Missing, "invalid": fieldErrs.Format},
		))
	case errors.Is(err, service.ErrValidation):
		HandleAPIError(c, err, common.ErrCodeValidation, "Niet alle verplichte velden zijn ingevuld of geldig")
	case errors.Is(err, service.ErrDuplicate):
		HandleAPIError(c, err, common.ErrCodeConflict, "Dit emailadres is al geregistreerd")
	case errors.Is(err, service.ErrNotFound):
		HandleAPIError(c, err, common.ErrCodeNotFound, "Resource not found")
	case errors.Is(err, service.ErrBackendMisconfigured):
		HandleAPIError(c, err, common.ErrCodeServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, service.ErrInvalidCredentials):
		HandleAPIError(c, err, common.ErrCodeUnauthorized, "Ongeldige inloggegevens")
	default:
		HandleAPIError(c, err, common.ErrCodeInternalServer, "Internal server error")
	}
}
