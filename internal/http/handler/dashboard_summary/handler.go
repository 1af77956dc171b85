package dashboardsummary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-service/internal/http/handler/common"
)

// Handler реализует GET /dashboard-summary.
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
	summary, err := h.useCase.DashboardSummary(r.Context())
	if err != nil {
		return err
	}
	common.RespondData(w, http.StatusOK, summary)
	return nil
}
