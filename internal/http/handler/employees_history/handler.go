package employeeshistory

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-service/internal/http/handler/common"
	"hr-dashboard-service/internal/logging"
)

// Handler реализует GET /employees/history.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/history", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	userID := query.Get("userId")

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return common.NewBadRequestError("limit must be an integer")
		}
	}

	history, err := h.useCase.ReportHistory(logging.WithLogUserID(r.Context(), userID), userID, limit)
	if err != nil {
		return err
	}
	common.RespondData(w, http.StatusOK, history)
	return nil
}
