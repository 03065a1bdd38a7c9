package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insurai_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insurai_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// PlansIngestedCounter counts plans written by document ingestion runs.
	PlansIngestedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insurai_plans_ingested_total",
			Help: "Total number of plans created by document ingestion",
		},
	)

	// ChatMessagesCounter counts completed advisor exchanges.
	ChatMessagesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insurai_chat_messages_total",
			Help: "Total number of answered advisor messages",
		},
	)
)

// Metrics tracks request counts and latency per route.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()
		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)

		return err
	}
}
