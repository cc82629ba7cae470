package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales_analytics/internal/application/analytics"
	"sales_analytics/internal/domain/order"
)

type AnalyticsHandler struct {
	svc *analytics.Service
}

func NewAnalyticsHandler(svc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.RevenueSummary())
}

func (h *AnalyticsHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.svc.RevenueByRegion()})
}

func (h *AnalyticsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.svc.RevenueBy(order.DimensionCategory)})
}

func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ForecastNextOrder())
}
