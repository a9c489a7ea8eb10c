package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Total number of products created",
	})

	ProductsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "Total number of products updated",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "Total number of products deleted, alone or in a batch",
	})

	BatchActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "batch_actions_total",
		Help: "Total number of batch actions applied to selected products",
	}, []string{"action"})

	ExportsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exports_generated_total",
		Help: "Total number of CSV exports generated",
	})

	LowStockAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "low_stock_alerts_total",
		Help: "Total number of low stock alerts raised by the stock watcher",
	})

	AdvisorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_requests_total",
		Help: "Total number of AI advisory requests",
	}, []string{"operation"})

	AdvisorFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_failures_total",
		Help: "Total number of AI advisory requests answered with a fallback",
	}, []string{"operation"})

	AdvisorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "advisor_request_duration_seconds",
		Help:    "Latency of AI advisory requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	InventoryProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_products",
		Help: "Current number of products in the catalog",
	})

	InventoryValue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_value",
		Help: "Current total inventory value (price times quantity)",
	})

	InventoryLowStockProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_low_stock_products",
		Help: "Current number of products below the low stock threshold",
	})

	InventoryOutOfStockProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inventory_out_of_stock_products",
		Help: "Current number of products with zero quantity",
	})

	InventoryCategoryProducts = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_category_products",
		Help: "Current number of products per category",
	}, []string{"category"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
