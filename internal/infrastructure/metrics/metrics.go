package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersCreated  prometheus.Counter
	OrdersRejected prometheus.Counter
	Reloads        prometheus.Counter
	StoreOrders    prometheus.Gauge

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	created := prometheus.NewCounter(prometheus.CounterOpts{Name: "sales_orders_created_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "sales_orders_rejected_total"})
	reloads := prometheus.NewCounter(prometheus.CounterOpts{Name: "sales_store_reloads_total"})
	storeOrders := prometheus.NewGauge(prometheus.GaugeOpts{Name: "sales_store_orders"})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_http_requests_total",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.MustRegister(created, rejected, reloads, storeOrders, requests, latency)
	return &Registry{
		reg:            r,
		OrdersCreated:  created,
		OrdersRejected: rejected,
		Reloads:        reloads,
		StoreOrders:    storeOrders,
		HTTPRequests:   requests,
		HTTPLatency:    latency,
	}
}

func (r *Registry) OrderCreated() {
	r.OrdersCreated.Inc()
	r.StoreOrders.Inc()
}

func (r *Registry) OrderRejected() { r.OrdersRejected.Inc() }

func (r *Registry) StoreReloaded(records int) {
	r.Reloads.Inc()
	r.StoreOrders.Set(float64(records))
}

func (r *Registry) SetStoreOrders(records int) { r.StoreOrders.Set(float64(records)) }

func (r *Registry) ObserveRequest(method, route, status string, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, route, status).Inc()
	r.HTTPLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
