package taskscreate

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/http/handler/common"
)

// Handler реализует POST /tasks?listId=.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	id := r.URL.Query().Get("listId")
	if strings.TrimSpace(id) == "" {
		return common.NewBadRequestError("listId is required")
	}

	var input domain.CreateTaskInput
	if err := common.DecodeJSON(r, &input); err != nil {
		return err
	}

	task, err := h.useCase.CreateTask(r.Context(), id, input)
	if err != nil {
		return err
	}
	common.RespondDataMessage(w, http.StatusCreated, []domain.Task{task}, "Task created successfully")
	return nil
}
