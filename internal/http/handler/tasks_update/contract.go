package tasksupdate

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

type UseCase interface {
	UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
}
