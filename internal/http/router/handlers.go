package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hr-dashboard-service/internal/http/handler/common"
	dashboardsummary "hr-dashboard-service/internal/http/handler/dashboard_summary"
	employeesget "hr-dashboard-service/internal/http/handler/employees_get"
	employeeshistory "hr-dashboard-service/internal/http/handler/employees_history"
	taskscreate "hr-dashboard-service/internal/http/handler/tasks_create"
	taskslist "hr-dashboard-service/internal/http/handler/tasks_list"
	tasksupdate "hr-dashboard-service/internal/http/handler/tasks_update"
	"hr-dashboard-service/internal/http/middleware"
	"hr-dashboard-service/internal/http/swagger"
	"hr-dashboard-service/internal/service"
)

// Handler агрегирует HTTP-эндпоинты.
type Handler struct {
	service        *service.Service
	swaggerSpec    []byte
	allowedOrigins []string
}

func New(service *service.Service, spec []byte, allowedOrigins []string) *Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Handler{service: service, swaggerSpec: spec, allowedOrigins: allowedOrigins}
}

// Router возвращает готовый chi.Router со всеми зарегистрированными маршрутами и middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	// Middleware применяются в порядке объявления
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.PanicMiddleware)
	r.Use(middleware.CORS(h.allowedOrigins))
	r.Use(middleware.OptionsMiddleware)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)

	// Должен быть задан до Route: chi копирует его во вложенные роутеры при монтировании
	r.MethodNotAllowed(common.WithErrorHandling(func(w http.ResponseWriter, r *http.Request) error {
		return common.NewMethodNotAllowedError(r.Method)
	}))

	swagger.RegisterRoutes(r, h.swaggerSpec)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.HealthCheck(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", "error", err)
			common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	h.registerDashboardRoutes(r)
	h.registerTaskRoutes(r)
	h.registerEmployeeRoutes(r)

	return r
}

func (h *Handler) registerDashboardRoutes(r chi.Router) {
	r.Route("/dashboard-summary", func(router chi.Router) {
		dashboardsummary.New(h.service).Register(router)
	})
}

func (h *Handler) registerTaskRoutes(r chi.Router) {
	r.Route("/tasks", func(router chi.Router) {
		taskslist.New(h.service).Register(router)
		taskscreate.New(h.service).Register(router)
		tasksupdate.New(h.service).Register(router)
	})
}

func (h *Handler) registerEmployeeRoutes(r chi.Router) {
	r.Route("/employees", func(router chi.Router) {
		employeesget.New(h.service).Register(router)
		employeeshistory.New(h.service).Register(router)
	})
}
