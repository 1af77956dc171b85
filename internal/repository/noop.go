package repository

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

// NoopStore используется, когда база данных не настроена: записи отбрасываются, история пуста.
type NoopStore struct{}

func (NoopStore) SaveDashboardSnapshot(context.Context, domain.DashboardSnapshot) error {
	return nil
}

func (NoopStore) SavePerformanceSnapshot(context.Context, domain.PerformanceSnapshot) error {
	return nil
}

func (NoopStore) ListPerformanceSnapshots(context.Context, string, int) ([]domain.PerformanceSnapshot, error) {
	return []domain.PerformanceSnapshot{}, nil
}

func (NoopStore) Ping(context.Context) error {
	return nil
}

var (
	_ SnapshotRepository = NoopStore{}
	_ HealthChecker      = NoopStore{}
)
