package dashboardsummary

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

type UseCase interface {
	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
}
