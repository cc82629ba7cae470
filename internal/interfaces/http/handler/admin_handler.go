package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales_analytics/internal/application/analytics"
)

type AdminHandler struct {
	svc *analytics.Service
}

func NewAdminHandler(svc *analytics.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Reload swaps in a fresh copy of the seed data. On failure the current data stays.
func (h *AdminHandler) Reload(c *gin.Context) {
	n, err := h.svc.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "records": n})
}
