package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alumet/api/internal/service"
)

// respondError is the single place service errors become HTTP responses,
// so both resource types report failures identically. Infrastructure
// causes are logged but never leave the process.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
	default:
		h.log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
