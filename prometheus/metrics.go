package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpStatusCategoryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_status_category_total",
			Help:      "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"category", "method", "path"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_success_total",
			Help:      "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_errors_total",
			Help:      "Total number of authentication errors by reason",
		},
		[]string{"reason"},
	)

	// Store operations, labelled by record kind
	StoreOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of store operations",
		},
		[]string{"store", "operation"},
	)

	// Persistence gateway timings
	PersistenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persistence_duration_seconds",
			Help:      "Duration of persistence operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	PersistenceErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_errors_total",
			Help:      "Total number of failed persistence operations",
		},
		[]string{"operation"},
	)

	// Orders
	OrdersCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created",
		},
	)

	ItemsSoldCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_sold_total",
			Help:      "Total number of units sold through orders and direct sales",
		},
	)

	// Low stock
	LowStockAlertsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "low_stock_alerts_total",
			Help:      "Total number of low-stock notifications emitted after a sale",
		},
	)

	LowStockProductsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "low_stock_products",
			Help:      "Number of products at or below their reorder level in the last report",
		},
	)
)

// StatusCategory buckets a status code as "2xx", "4xx" and so on
func StatusCategory(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}

// TrackPersistence returns a function that records the duration of a persistence operation
func TrackPersistence(operation string) func(startTime time.Time) {
	return func(startTime time.Time) {
		PersistenceDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
	}
}

// RecordStoreOperation increments the counter for store operations
func RecordStoreOperation(store, operation string) {
	StoreOperationsCounter.WithLabelValues(store, operation).Inc()
}

// RecordPersistenceError increments the failed persistence counter
func RecordPersistenceError(operation string) {
	PersistenceErrorsCounter.WithLabelValues(operation).Inc()
}

// RecordAuthError increments the auth error counter for a reason
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordSale records units leaving stock
func RecordSale(quantity int) {
	ItemsSoldCounter.Add(float64(quantity))
}

// UpdateLowStockProducts sets the low stock gauge
func UpdateLowStockProducts(count int) {
	LowStockProductsGauge.Set(float64(count))
}
