package employeesget

import (
	"context"

	"hr-dashboard-service/internal/domain"
)

type UseCase interface {
	Employees(ctx context.Context) ([]domain.Employee, error)
	Employee(ctx context.Context, userID string) (domain.Employee, error)
	PerformanceReport(ctx context.Context, userID string, days int) (domain.PerformanceReport, error)
}
