package service

import (
	"context"
	"fmt"
	"log/slog"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/logging"
	"hr-dashboard-service/internal/metrics"
)

// ListTasks возвращает задачи списка, обрезанные до limit (0 без ограничения).
func (s *Service) ListTasks(ctx context.Context, listID string, filter domain.TaskFilter, limit int) ([]domain.Task, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	ctx = logging.WithLogListID(ctx, listID)

	if err := ValidateListID(listID); err != nil {
		return nil, err
	}
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	tasks, err := s.gateway.Tasks(ctx, listID, filter)
	if err != nil {
		err = logging.WrapError(ctx, err)
		slog.ErrorContext(ctx, "failed to fetch tasks", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchTasks, err)
	}
	if limit > 0 {
		tasks = head(tasks, limit)
	}
	return nonNilTasks(tasks), nil
}

// CreateTask создаёт задачу в списке.
func (s *Service) CreateTask(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	ctx = logging.WithLogListID(ctx, listID)

	if err := ValidateListID(listID); err != nil {
		return domain.Task{}, err
	}
	if err := ValidateCreateTask(input); err != nil {
		return domain.Task{}, err
	}

	task, err := s.gateway.CreateTask(ctx, listID, input)
	if err != nil {
		err = logging.WrapError(ctx, err)
		slog.ErrorContext(ctx, "failed to create task", "error", err)
		return domain.Task{}, fmt.Errorf("%w: %w", domain.ErrCreateTask, err)
	}
	metrics.IncTasksCreated()
	return task, nil
}

// UpdateTask частично обновляет задачу.
func (s *Service) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	ctx = logging.WithLogTaskID(ctx, taskID)

	if err := ValidateTaskID(taskID); err != nil {
		return domain.Task{}, err
	}
	if err := ValidateUpdateTask(input); err != nil {
		return domain.Task{}, err
	}

	task, err := s.gateway.UpdateTask(ctx, taskID, input)
	if err != nil {
		err = logging.WrapError(ctx, err)
		slog.ErrorContext(ctx, "failed to update task", "error", err)
		return domain.Task{}, fmt.Errorf("%w: %w", domain.ErrUpdateTask, err)
	}
	metrics.IncTasksUpdated()
	return task, nil
}
