package taskslist

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/http/handler/common"
)

const defaultLimit = 50

// Handler реализует GET /tasks.
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

	filter, err := parseFilter(query.Get("archived"), query.Get("page"))
	if err != nil {
		return err
	}
	filter.Assignees = splitList(query.Get("assignees"))
	filter.Statuses = splitList(query.Get("statuses"))

	limit := defaultLimit
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return common.NewBadRequestError("limit must be an integer")
		}
	}

	tasks, err := h.useCase.ListTasks(r.Context(), query.Get("listId"), filter, limit)
	if err != nil {
		return err
	}
	common.RespondData(w, http.StatusOK, tasks)
	return nil
}

// parseFilter archived по умолчанию false, page по умолчанию 0.
func parseFilter(archivedRaw, pageRaw string) (domain.TaskFilter, error) {
	archived := archivedRaw == "true"
	page := 0
	if pageRaw != "" {
		var err error
		page, err = strconv.Atoi(pageRaw)
		if err != nil || page < 0 {
			return domain.TaskFilter{}, common.NewBadRequestError("page must be a non-negative integer")
		}
	}
	return domain.TaskFilter{Archived: &archived, Page: &page}, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
