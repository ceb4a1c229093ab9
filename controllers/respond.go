package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal failure: logged with its storage
// detail, surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidState):
		status, message = http.StatusUnprocessableEntity, err.Error()
	default:
		log.Printf("request %s failed: %v", c.GetString("requestID"), err)
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}

func currentUserID(c *gin.Context) int {
	id, _ := c.Get("userID")
	userID, _ := id.(int)
	return userID
}

func currentRole(c *gin.Context) string {
	role, _ := c.Get("role")
	name, _ := role.(string)
	return name
}
