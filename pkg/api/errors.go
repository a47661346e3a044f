package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackfleet/hackfleet/pkg/services"
)

// mapServiceError writes the HTTP error response for a service-layer error.
func mapServiceError(c *gin.Context, err error) {
	status, message := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected service error", "error", err)
	}
	c.JSON(status, gin.H{"error": message})
}

// serviceErrorStatus maps service-layer errors to an HTTP status and a
// client-safe message.
func serviceErrorStatus(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		return http.StatusConflict, "stack is not in a state that allows this transition"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}
	return http.StatusInternalServerError, "internal server error"
}
