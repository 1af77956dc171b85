package employeeshistory

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

type UseCase interface {
	ReportHistory(ctx context.Context, userID string, limit int) ([]domain.PerformanceSnapshot, error)
}
