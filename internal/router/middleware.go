package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neuralcash/backend/internal/auth"
	"github.com/neuralcash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// AuthMiddleware resolves the bearer token of the request to a user and
// stores the user ID in the request context. Requests without a valid token
// are rejected before any handler runs.
func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			httputil.Error(c, http.StatusUnauthorized, errMissingToken)
			c.Abort()
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			httputil.Error(c, http.StatusUnauthorized, errInvalidToken)
			c.Abort()
			return
		}

		c.Set(httputil.ContextUser, user.ID)
		c.Next()
	}
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, collector := range metrics {
		if err := prometheus.Register(collector); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", collector)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
func unregisterPrometheusMetrics() bool {
	for _, collector := range metrics {
		if ok := prometheus.Unregister(collector); !ok {
			return false
		}
	}

	return true
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
