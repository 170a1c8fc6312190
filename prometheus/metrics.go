package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saas_login_total",
			Help: "Total number of login attempts",
		},
		[]string{"service"}, // "notes" or "storefront"
	)

	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "saas_register_total",
			Help: "Total number of storefront registrations",
		},
	)

	NoteOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saas_note_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"}, // "list", "create", "get", "update", "delete"
	)

	QuotaRejectionCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "saas_note_quota_rejections_total",
			Help: "Total number of note creations rejected by the free-plan quota",
		},
	)

	TenantUpgradeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "saas_tenant_upgrades_total",
			Help: "Total number of tenant plan upgrades",
		},
	)

	CartOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saas_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"}, // "get", "add", "update", "remove", "clear"
	)

	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saas_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saas_auth_errors_total",
			Help: "Total number of authentication and authorization errors",
		},
		[]string{"type"},
	)
)

// Histogram metrics
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "saas_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "saas_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	ActiveTokensGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "saas_active_tokens",
			Help: "Number of tokens issued and not yet expired (approximate)",
		},
	)

	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "saas_info",
			Help: "Information about the service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(NoteOperationCounter)
	prometheus.MustRegister(QuotaRejectionCounter)
	prometheus.MustRegister(TenantUpgradeCounter)
	prometheus.MustRegister(CartOperationCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(AuthErrorCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	prometheus.MustRegister(ActiveTokensGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// IncreaseActiveTokens increments the active tokens gauge
func IncreaseActiveTokens() {
	ActiveTokensGauge.Inc()
}

// RecordAuthError records an authentication or authorization error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordNoteOperation records a note operation
func RecordNoteOperation(operation string) {
	NoteOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordCartOperation records a cart operation
func RecordCartOperation(operation string) {
	CartOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordLogin records a login attempt for the given service
func RecordLogin(service string) {
	LoginCounter.With(prometheus.Labels{"service": service}).Inc()
}
