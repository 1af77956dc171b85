package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClickUpRequestsTotal запросы к ClickUp API по шаблону эндпоинта и статусу
	ClickUpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickup_requests_total",
			Help: "Total number of requests sent to the ClickUp API.",
		},
		[]string{"endpoint", "status"},
	)

	// ClickUpRequestDuration длительность запросов к ClickUp API
	ClickUpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clickup_request_duration_seconds",
			Help:    "Duration of requests to the ClickUp API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// ClickUpBreakerState состояние circuit breaker: 0 closed, 1 half-open, 2 open
	ClickUpBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clickup_breaker_state",
			Help: "State of the ClickUp circuit breaker (0 closed, 1 half-open, 2 open).",
		},
	)
)

// ObserveClickUpRequest записывает результат запроса к ClickUp.
// status == 0 означает сетевую ошибку без HTTP-ответа.
func ObserveClickUpRequest(endpoint string, status int, duration time.Duration) {
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	ClickUpRequestsTotal.WithLabelValues(endpoint, label).Inc()
	ClickUpRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// SetClickUpBreakerState выставляет текущее состояние circuit breaker.
func SetClickUpBreakerState(state int) {
	ClickUpBreakerState.Set(float64(state))
}
