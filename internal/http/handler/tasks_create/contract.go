package taskscreate

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

type UseCase interface {
	CreateTask(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error)
}
