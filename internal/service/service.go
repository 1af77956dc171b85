package service

import (
	"context"
	"log/slog"
	"time"

	trm "github.com/avito-tech/go-transaction-manager/trm/v2"

	"hr-dashboard-service/internal/config"
	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/infrastructure/nower"
)

const (
	// DefaultOperationTimeout таймаут по умолчанию для обычных операций
	DefaultOperationTimeout = 30 * time.Second
	// DefaultLongOperationTimeout таймаут по умолчанию для длительных операций
	DefaultLongOperationTimeout = 60 * time.Second

	defaultWindowDays  = 30
	defaultRecentLimit = 10
	defaultMaxParallel = 8
	defaultTeamName    = "HR Team"
)

// Service агрегирует данные ClickUp в показатели HR-дашборда.
type Service struct {
	gateway   Gateway
	snapshots SnapshotStore
	cfg       config.Config
	trMgr     trm.Manager
	nower     nower.Nower
}

func New(gateway Gateway, snapshots SnapshotStore, cfg config.Config, trMgr trm.Manager, nower nower.Nower) *Service {
	svc := &Service{
		gateway:   gateway,
		snapshots: snapshots,
		cfg:       cfg,
		trMgr:     trMgr,
		nower:     nower,
	}
	if svc.cfg.Timeouts.Operation <= 0 {
		svc.cfg.Timeouts.Operation = DefaultOperationTimeout
	}
	if svc.cfg.Timeouts.LongOperation <= 0 {
		svc.cfg.Timeouts.LongOperation = DefaultLongOperationTimeout
	}

	d := &svc.cfg.Dashboard
	if d.EmployeeWindowDays <= 0 {
		d.EmployeeWindowDays = defaultWindowDays
	}
	if d.RecentLimit <= 0 {
		d.RecentLimit = defaultRecentLimit
	}
	if d.RecentSpaces <= 0 {
		d.RecentSpaces = 3
	}
	if d.RecentLists <= 0 {
		d.RecentLists = 5
	}
	if d.RecentPerList <= 0 {
		d.RecentPerList = 5
	}
	if d.MaxParallel <= 0 {
		d.MaxParallel = defaultMaxParallel
	}
	if d.TeamName == "" {
		d.TeamName = defaultTeamName
	}
	return svc
}

// HealthCheck проверяет хранилище истории и, если включено, доступность ClickUp.
func (s *Service) HealthCheck(ctx context.Context) error {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if s.snapshots != nil {
		if err := s.snapshots.Ping(ctx); err != nil {
			return err
		}
	}
	if s.cfg.ClickUp.HealthCheck && !s.gateway.TestConnection(ctx) {
		slog.WarnContext(ctx, "clickup health check failed")
		return domain.ErrClickUpUnavailable
	}
	return nil
}

// shortOperationContext создаёт контекст с таймаутом для обычных операций.
func (s *Service) shortOperationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Timeouts.Operation)
}

// longOperationContext создаёт контекст с таймаутом для длительных операций.
func (s *Service) longOperationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Timeouts.LongOperation)
}
