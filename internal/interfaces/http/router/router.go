package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales_analytics/internal/interfaces/http/handler"
)

type Handlers struct {
	Orders    *handler.OrderHandler
	Analytics *handler.AnalyticsHandler
	Admin     *handler.AdminHandler
	Metrics   http.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Admin.Health)

	orders := r.Group("/orders")
	{
		orders.GET("", h.Orders.ListOrders)
		orders.POST("", h.Orders.CreateOrder)
	}

	analytics := r.Group("/analytics")
	{
		analytics.GET("/summary", h.Analytics.Summary)
		analytics.GET("/regions", h.Analytics.Regions)
		analytics.GET("/categories", h.Analytics.Categories)
		analytics.GET("/forecast", h.Analytics.Forecast)
	}

	r.POST("/admin/reload", h.Admin.Reload)

	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}
}
