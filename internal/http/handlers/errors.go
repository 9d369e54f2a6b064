package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapi/internal/domain"
	"tourapi/internal/http/middleware"
)

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Field-level
// validation errors carry their per-field messages so the client can render
// them inline next to each input.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		payload := gin.H{
			"error":      err.Error(),
			"code":       "validation_error",
			"request_id": middleware.GetRequestID(c),
		}
		if fields := domain.FieldErrors(err); len(fields) > 0 {
			payload["fields"] = fields
		}
		c.JSON(http.StatusBadRequest, payload)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong", nil)
	}
}
