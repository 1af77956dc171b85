package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/logging"
	"hr-dashboard-service/internal/metrics"
)

const (
	reportRecentTasks   = 10
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// PerformanceReport строит отчёт об эффективности сотрудника за days дней.
// Любая ошибка ClickUp возвращается как domain.ErrPerformanceReport.
func (s *Service) PerformanceReport(ctx context.Context, userID string, days int) (domain.PerformanceReport, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	ctx = logging.WithLogUserID(ctx, userID)

	if days <= 0 {
		days = s.cfg.Dashboard.EmployeeWindowDays
	}

	member, err := s.findMember(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return domain.PerformanceReport{}, err
		}
		slog.ErrorContext(ctx, "performance report: team members unavailable", "error", err)
		return domain.PerformanceReport{}, fmt.Errorf("%w: %w", domain.ErrPerformanceReport, err)
	}

	tasks, now, err := s.windowTasks(ctx, userID, days)
	if err != nil {
		err = logging.WrapError(ctx, err)
		slog.ErrorContext(ctx, "performance report: employee tasks unavailable", "error", err)
		return domain.PerformanceReport{}, fmt.Errorf("%w: %w", domain.ErrPerformanceReport, err)
	}

	stats := ComputeTaskStats(tasks, now)
	completed := make([]domain.Task, 0, stats.Completed)
	for _, task := range tasks {
		if task.Status.Type == domain.StatusTypeClosed {
			completed = append(completed, task)
		}
	}

	report := domain.PerformanceReport{
		Employee:              s.toEmployee(member, stats),
		TasksCompleted:        len(completed),
		AverageCompletionTime: AverageCompletionDays(completed),
		ProductivityScore:     ProductivityScore(stats),
		RecentTasks:           head(nonNilTasks(tasks), reportRecentTasks),
		WindowDays:            days,
		GeneratedAt:           now,
	}
	metrics.IncPerformanceReports()
	s.recordPerformance(ctx, userID, report)
	return report, nil
}

// ReportHistory возвращает сохранённые отчёты сотрудника, новые первыми.
func (s *Service) ReportHistory(ctx context.Context, userID string, limit int) ([]domain.PerformanceSnapshot, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if s.snapshots == nil {
		return []domain.PerformanceSnapshot{}, nil
	}

	history, err := s.snapshots.ListPerformanceSnapshots(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchHistory, logging.WrapError(ctx, err))
	}
	if history == nil {
		history = []domain.PerformanceSnapshot{}
	}
	return history, nil
}

func (s *Service) recordPerformance(ctx context.Context, userID string, report domain.PerformanceReport) {
	if s.snapshots == nil {
		return
	}
	snapshot := domain.PerformanceSnapshot{
		UserID:                userID,
		WindowDays:            report.WindowDays,
		TasksCompleted:        report.TasksCompleted,
		AverageCompletionDays: report.AverageCompletionTime,
		ProductivityScore:     report.ProductivityScore,
		CreatedAt:             report.GeneratedAt,
	}
	err := s.inTransaction(ctx, func(ctx context.Context) error {
		return s.snapshots.SavePerformanceSnapshot(ctx, snapshot)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to save performance snapshot", "error", err)
		metrics.IncSnapshotFailures()
	}
}

func nonNilTasks(tasks []domain.Task) []domain.Task {
	if tasks == nil {
		return []domain.Task{}
	}
	return tasks
}
