package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/middleware"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// GetProfile answers from the verified token claims only.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c, "access_denied", "Access Denied")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
	})
}
