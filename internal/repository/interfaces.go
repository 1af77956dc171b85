package repository

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

// SnapshotRepository хранит историю сводок дашборда и отчётов об эффективности.
type SnapshotRepository interface {
	SaveDashboardSnapshot(ctx context.Context, snapshot domain.DashboardSnapshot) error
	SavePerformanceSnapshot(ctx context.Context, snapshot domain.PerformanceSnapshot) error
	ListPerformanceSnapshots(ctx context.Context, userID string, limit int) ([]domain.PerformanceSnapshot, error)
}

// HealthChecker описывает метод проверки соединения.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
