package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/services"
)

// queryParams flattens the query string to the single-valued mapping the
// whitelist builders take. Repeated keys keep their first value.
func queryParams(c *gin.Context) map[string]string {
	params := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

// handleError maps the service error taxonomy onto responses. Anything
// outside the taxonomy is logged and answered generically, never retried.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found."})
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token unrecognized."})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email address is already in use."})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dang. That's definitely our bad."})
	}
}
