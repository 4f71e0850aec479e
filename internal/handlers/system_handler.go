package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

type SystemHandler struct {
	version VersionSource
}

func NewSystemHandler(version VersionSource) *SystemHandler {
	return &SystemHandler{version: version}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Booking API is running"})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SystemHandler) Version(c *gin.Context) {
	v, err := h.version.Version(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"version": v})
}

func (h *SystemHandler) Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
