package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/logging"
)

// Response единый конверт ответов API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// RespondJSON отправляет JSON-ответ с указанным статус-кодом.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondData отправляет успешный ответ с данными.
func RespondData(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, Response{Success: true, Data: data})
}

// RespondDataMessage отправляет успешный ответ с данными и сообщением.
func RespondDataMessage(w http.ResponseWriter, status int, data any, message string) {
	RespondJSON(w, status, Response{Success: true, Data: data, Message: message})
}

// RespondError отправляет ответ с ошибкой.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: false, Error: message})
}

// HTTPError описывает контролируемую HTTP-ошибку.
type HTTPError struct {
	status  int
	message string
}

func (e *HTTPError) Error() string {
	return e.message
}

// Status возвращает HTTP статус ошибки.
func (e *HTTPError) Status() int {
	return e.status
}

// NewHTTPError создаёт новую HTTP-ошибку.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		status:  status,
		message: message,
	}
}

// NewBadRequestError создаёт 400 ошибку.
func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewMethodNotAllowedError создаёт 405 ошибку для метода запроса.
func NewMethodNotAllowedError(method string) *HTTPError {
	return NewHTTPError(http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", method))
}

// WithErrorHandling оборачивает обработчик, централизуя выдачу ошибок.
func WithErrorHandling(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				RespondError(w, httpErr.status, httpErr.message)
				return
			}
			WriteDomainError(w, r, err)
		}
	}
}

// domainErrors порядок важен: отчёт и сводка оборачивают ошибки получения сотрудников.
var domainErrors = []struct {
	target  error
	status  int
	message string
}{
	{domain.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
	{domain.ErrClickUpUnavailable, http.StatusServiceUnavailable, "ClickUp is unavailable"},
	{domain.ErrPerformanceReport, http.StatusInternalServerError, "Failed to generate performance report"},
	{domain.ErrFetchDashboard, http.StatusInternalServerError, "Failed to fetch dashboard data"},
	{domain.ErrFetchEmployees, http.StatusInternalServerError, "Failed to fetch employee data"},
	{domain.ErrFetchTasks, http.StatusInternalServerError, "Failed to fetch tasks"},
	{domain.ErrCreateTask, http.StatusInternalServerError, "Failed to create task"},
	{domain.ErrUpdateTask, http.StatusInternalServerError, "Failed to update task"},
	{domain.ErrFetchHistory, http.StatusInternalServerError, "Failed to fetch report history"},
}

// WriteDomainError преобразует доменные ошибки в HTTP-ответы.
// Лог ошибки получает поля, сохранённые сервисом через logging.WrapError.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := logging.ErrorCtx(r.Context(), err)
	requestID := chimw.GetReqID(ctx)

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		slog.DebugContext(ctx, "invalid request", "request_id", requestID, "error", err)
		RespondError(w, http.StatusBadRequest, validationErr.Message)
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		slog.DebugContext(ctx, "invalid request", "request_id", requestID, "error", err)
		RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	for _, de := range domainErrors {
		if !errors.Is(err, de.target) {
			continue
		}
		if de.status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "request failed", "request_id", requestID, "error", err)
		} else {
			slog.DebugContext(ctx, "request rejected", "request_id", requestID, "error", err)
		}
		RespondError(w, de.status, de.message)
		return
	}

	slog.ErrorContext(ctx, "unhandled domain error", "request_id", requestID, "error", err)
	RespondError(w, http.StatusInternalServerError, "Internal server error")
}

// DecodeJSON декодирует тело запроса в dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return NewBadRequestError("Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return NewBadRequestError("Invalid JSON body")
	}
	return nil
}
