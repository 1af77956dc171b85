package clickup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"hr-dashboard-service/internal/config"
	"hr-dashboard-service/internal/metrics"
)

// NewBreaker создаёт circuit breaker для запросов к ClickUp.
// Ответы 4xx не считаются отказом: ClickUp доступен, ошибка на стороне запроса.
// Запросы, прерванные контекстом вызывающего, тоже не считаются отказом.
// Таймаут самого HTTP-клиента остаётся отказом.
func NewBreaker(cfg config.BreakerConfig) *gobreaker.CircuitBreaker {
	threshold := cfg.ConsecutiveFailures
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "clickup",
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var aborted *abortedError
			if errors.As(err, &aborted) || errors.Is(err, context.Canceled) {
				return true
			}
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError && apiErr.StatusCode != http.StatusTooManyRequests
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			metrics.SetClickUpBreakerState(int(to))
		},
	})
}
