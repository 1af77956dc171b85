package tasksupdate

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/http/handler/common"
)

// Handler реализует PUT /tasks?taskId=.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Put("/", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	id := r.URL.Query().Get("taskId")
	if strings.TrimSpace(id) == "" {
		return common.NewBadRequestError("taskId is required")
	}

	var input domain.UpdateTaskInput
	if err := common.DecodeJSON(r, &input); err != nil {
		return err
	}

	task, err := h.useCase.UpdateTask(r.Context(), id, input)
	if err != nil {
		return err
	}
	common.RespondDataMessage(w, http.StatusOK, []domain.Task{task}, "Task updated successfully")
	return nil
}
