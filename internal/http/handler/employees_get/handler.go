package employeesget

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-service/internal/http/handler/common"
	"hr-dashboard-service/internal/logging"
)

// Handler реализует GET /employees.
// Без userId возвращает всех сотрудников, с userId одного,
// с performanceReport=true отчёт об эффективности за days дней.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	userID := query.Get("userId")
	if userID == "" {
		employees, err := h.useCase.Employees(r.Context())
		if err != nil {
			return err
		}
		common.RespondData(w, http.StatusOK, employees)
		return nil
	}

	ctx := logging.WithLogUserID(r.Context(), userID)
	if query.Get("performanceReport") == "true" {
		days := 0
		if raw := query.Get("days"); raw != "" {
			var err error
			days, err = strconv.Atoi(raw)
			if err != nil || days < 0 {
				return common.NewBadRequestError("days must be a non-negative integer")
			}
		}
		report, err := h.useCase.PerformanceReport(ctx, userID, days)
		if err != nil {
			return err
		}
		common.RespondData(w, http.StatusOK, report)
		return nil
	}

	employee, err := h.useCase.Employee(ctx, userID)
	if err != nil {
		return err
	}
	common.RespondData(w, http.StatusOK, employee)
	return nil
}
