package controllers

import (
	"errors"
	"net/http"
	"strings"

	"nutriassist/catalog"
	"nutriassist/services"

	"github.com/gin-gonic/gin"
)

// Shared read-only food reference, injected into every service that resolves
// food names.
var foodCatalog = catalog.Static()

var sentinels = []error{
	services.ErrValidation,
	services.ErrConflict,
	services.ErrForbidden,
	services.ErrNotFound,
}

func userMessage(err error) string {
	msg := err.Error()
	for _, s := range sentinels {
		if prefix := s.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}

// respondError maps a service error onto the uniform envelope. Unknown errors
// surface the fallback message, never internals.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": userMessage(err)})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": userMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback})
	}
}
