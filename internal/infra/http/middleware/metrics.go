package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	analyticsErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_request_errors_total",
			Help: "Total number of failed requests to the analytics backend",
		},
		[]string{"endpoint"},
	)

	massFollowupJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mass_followup_jobs_total",
			Help: "Total number of mass follow-up jobs by final state",
		},
		[]string{"status"},
	)

	backendUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_backend_up",
			Help: "1 when the analytics backend health check passes",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern usa o padrão do chi para não criar uma série por query/ID.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// RecordAnalyticsError tira a query do endpoint antes de virar label.
func RecordAnalyticsError(endpoint string) {
	endpoint, _, _ = strings.Cut(endpoint, "?")
	analyticsErrors.WithLabelValues(endpoint).Inc()
}

func RecordMassFollowupJob(status string) {
	massFollowupJobs.WithLabelValues(status).Inc()
}

func SetBackendUp(up bool) {
	if up {
		backendUp.Set(1)
		return
	}
	backendUp.Set(0)
}
