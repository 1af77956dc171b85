package service

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

// Gateway описывает вызовы ClickUp, которые требуются сервису.
type Gateway interface {
	TeamMembers(ctx context.Context, teamID string) ([]domain.User, error)
	Spaces(ctx context.Context, teamID string) ([]domain.Space, error)
	Lists(ctx context.Context, spaceID string) ([]domain.List, error)
	Tasks(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	EmployeeTasks(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error)
	TeamWorkload(ctx context.Context, teamID string) (domain.Workload, error)
	TestConnection(ctx context.Context) bool
}

// SnapshotStore хранит историю сводок и отчётов.
type SnapshotStore interface {
	SaveDashboardSnapshot(ctx context.Context, snapshot domain.DashboardSnapshot) error
	SavePerformanceSnapshot(ctx context.Context, snapshot domain.PerformanceSnapshot) error
	ListPerformanceSnapshots(ctx context.Context, userID string, limit int) ([]domain.PerformanceSnapshot, error)
	Ping(ctx context.Context) error
}
