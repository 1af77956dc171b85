package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/infrastructure/nower"
)

const (
	dashboardSnapshotsTable   = "dashboard_snapshots"
	performanceSnapshotsTable = "performance_snapshots"
)

type pgxPool interface {
	trmpgx.Tr
	Close()
	Ping(ctx context.Context) error
}

// Storage хранит историю отчётов в PostgreSQL.
// Запросы выполняются в транзакции из контекста, если менеджер транзакций её открыл.
type Storage struct {
	pool   pgxPool
	getter *trmpgx.CtxGetter
	nower  nower.Nower
	sb     squirrel.StatementBuilderType
	newID  func() string
}

// New создаёт новый слой хранения.
func New(pool pgxPool, nower nower.Nower) *Storage {
	return &Storage{
		pool:   pool,
		getter: trmpgx.DefaultCtxGetter,
		nower:  nower,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		newID:  uuid.NewString,
	}
}

func (s *Storage) conn(ctx context.Context) trmpgx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.pool)
}

// Close освобождает соединения пула.
func (s *Storage) Close() {
	s.pool.Close()
}

// Ping проверяет доступность подключения к БД.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// SaveDashboardSnapshot сохраняет срез сводки дашборда.
func (s *Storage) SaveDashboardSnapshot(ctx context.Context, snapshot domain.DashboardSnapshot) error {
	s.fillDashboardDefaults(&snapshot)

	query, args, err := s.sb.
		Insert(dashboardSnapshotsTable).
		Columns("id", "total_employees", "total_tasks", "completed_tasks", "overdue_tasks",
			"completion_rate", "workload", "created_at").
		Values(snapshot.ID, snapshot.TotalEmployees, snapshot.TotalTasks, snapshot.CompletedTasks,
			snapshot.OverdueTasks, snapshot.CompletionRate, string(snapshot.Workload), snapshot.CreatedAt).
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build insert dashboard snapshot query", "error", err)
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	if _, err := s.conn(ctx).Exec(ctx, query, args...); err != nil {
		slog.ErrorContext(ctx, "failed to insert dashboard snapshot", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return nil
}

// SavePerformanceSnapshot сохраняет срез отчёта об эффективности.
func (s *Storage) SavePerformanceSnapshot(ctx context.Context, snapshot domain.PerformanceSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = s.newID()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = s.nower.Now()
	}

	query, args, err := s.sb.
		Insert(performanceSnapshotsTable).
		Columns("id", "user_id", "window_days", "tasks_completed", "average_completion_days",
			"productivity_score", "created_at").
		Values(snapshot.ID, snapshot.UserID, snapshot.WindowDays, snapshot.TasksCompleted,
			snapshot.AverageCompletionDays, snapshot.ProductivityScore, snapshot.CreatedAt).
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build insert performance snapshot query", "error", err)
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	if _, err := s.conn(ctx).Exec(ctx, query, args...); err != nil {
		slog.ErrorContext(ctx, "failed to insert performance snapshot", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return nil
}

// ListPerformanceSnapshots возвращает последние limit отчётов сотрудника, новые первыми.
func (s *Storage) ListPerformanceSnapshots(ctx context.Context, userID string, limit int) ([]domain.PerformanceSnapshot, error) {
	builder := s.sb.
		Select("id", "user_id", "window_days", "tasks_completed", "average_completion_days",
			"productivity_score", "created_at").
		From(performanceSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build list performance snapshots query", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := s.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	defer rows.Close()

	result := make([]domain.PerformanceSnapshot, 0)
	for rows.Next() {
		var snap domain.PerformanceSnapshot
		if err := rows.Scan(&snap.ID, &snap.UserID, &snap.WindowDays, &snap.TasksCompleted,
			&snap.AverageCompletionDays, &snap.ProductivityScore, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanResult, err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanResult, err)
	}
	return result, nil
}

func (s *Storage) fillDashboardDefaults(snapshot *domain.DashboardSnapshot) {
	if snapshot.ID == "" {
		snapshot.ID = s.newID()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = s.nower.Now()
	}
}

var (
	_ SnapshotRepository = (*Storage)(nil)
	_ HealthChecker      = (*Storage)(nil)
)
