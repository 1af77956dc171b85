package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"hr-dashboard-service/internal/infrastructure/nower"
	"hr-dashboard-service/internal/metrics"
)

const (
	// DefaultBaseURL адрес публичного ClickUp API v2.
	DefaultBaseURL = "https://api.clickup.com/api/v2"
	// DefaultTimeout таймаут одного запроса к ClickUp.
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 64 << 10
)

// Config параметры подключения к ClickUp.
type Config struct {
	BaseURL string
	Token   string
	TeamID  string
	Timeout time.Duration
}

// Executor выполняет запрос к ClickUp. Реализуется *gobreaker.CircuitBreaker.
type Executor interface {
	Execute(req func() (interface{}, error)) (interface{}, error)
}

type directExecutor struct{}

func (directExecutor) Execute(req func() (interface{}, error)) (interface{}, error) {
	return req()
}

// Option настраивает Client.
type Option func(*Client)

// WithExecutor оборачивает каждый запрос в exec (например, circuit breaker).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithHTTPClient подменяет HTTP-клиент.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithNower задаёт часы для подсчёта просроченных задач.
func WithNower(n nower.Nower) Option {
	return func(c *Client) {
		if n != nil {
			c.now = n
		}
	}
}

// Client шлюз к ClickUp API. Внутренних повторов нет: решение о повторе принимает вызывающий.
type Client struct {
	baseURL string
	token   string
	teamID  string
	http    *http.Client
	exec    Executor
	now     nower.Nower
}

// New создаёт клиент ClickUp.
func New(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		teamID:  cfg.TeamID,
		http:    &http.Client{Timeout: timeout},
		exec:    directExecutor{},
		now:     nower.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TeamID возвращает ID команды по умолчанию.
func (c *Client) TeamID() string {
	return c.teamID
}

// APIError ответ ClickUp со статусом вне 2xx.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("clickup %s %s: status %d: %s (%s)", e.Method, e.Path, e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("clickup %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// StatusCodeOf возвращает HTTP-статус ошибки ClickUp или 0, если err не *APIError.
func StatusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// request описывает один вызов ClickUp. endpoint это шаблон пути для метрик.
type request struct {
	method   string
	endpoint string
	path     string
	query    url.Values
	body     any
}

// abortedError запрос прерван отменой или дедлайном контекста вызывающего, а не отказом ClickUp.
type abortedError struct {
	err error
}

func (e *abortedError) Error() string {
	return e.err.Error()
}

func (e *abortedError) Unwrap() error {
	return e.err
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	_, err := c.exec.Execute(func() (interface{}, error) {
		err := c.roundTrip(ctx, r, out)
		if err != nil && ctx.Err() != nil {
			return nil, &abortedError{err: err}
		}
		return nil, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("clickup %s %s: %w", r.method, r.path, err)
	}
	var aborted *abortedError
	if errors.As(err, &aborted) {
		return aborted.err
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", r.endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", r.method, r.path, err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveClickUpRequest(r.endpoint, 0, time.Since(start))
		return fmt.Errorf("clickup %s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()
	metrics.ObserveClickUpRequest(r.endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeAPIError(resp)
		apiErr.Method = r.method
		apiErr.Path = r.path
		slog.DebugContext(ctx, "clickup request rejected", "endpoint", r.endpoint, "status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", r.endpoint, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Err   string `json:"err"`
		ECode string `json:"ECODE"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &payload) == nil && payload.Err != "" {
		apiErr.Message = payload.Err
		apiErr.Code = payload.ECode
		return apiErr
	}
	apiErr.Message = http.StatusText(resp.StatusCode)
	if apiErr.Message == "" {
		apiErr.Message = "unexpected status"
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, endpoint: endpoint, path: path, query: query}, out)
}

func (c *Client) team(teamID string) string {
	if teamID == "" {
		return c.teamID
	}
	return teamID
}
