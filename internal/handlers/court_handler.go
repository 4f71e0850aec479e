package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	courtdomain "github.com/BruksfildServices01/court-booking/internal/domain/court"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

type CourtHandler struct {
	courts courtdomain.Repository
}

func NewCourtHandler(courts courtdomain.Repository) *CourtHandler {
	return &CourtHandler{courts: courts}
}

// List returns every court, or only those of ?sport_type=.
func (h *CourtHandler) List(c *gin.Context) {
	sportType := strings.TrimSpace(c.Query("sport_type"))

	courts, err := h.courts.ListCourts(c.Request.Context(), sportType)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courts": courts})
}
