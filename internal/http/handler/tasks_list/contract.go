package taskslist

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

type UseCase interface {
	ListTasks(ctx context.Context, listID string, filter domain.TaskFilter, limit int) ([]domain.Task, error)
}
