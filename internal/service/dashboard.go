package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/logging"
	"hr-dashboard-service/internal/metrics"
)

// DashboardSummary собирает сводку дашборда. Ошибка любой ветки (сотрудники, нагрузка)
// прерывает сборку целиком и возвращается как domain.ErrFetchDashboard.
func (s *Service) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	ctx, cancel := s.longOperationContext(ctx)
	defer cancel()

	var (
		employees      []domain.Employee
		workload       domain.Workload
		recent         []domain.Task
		activeProjects int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		workload, err = s.gateway.TeamWorkload(gctx, s.cfg.ClickUp.TeamID)
		if err != nil {
			return fmt.Errorf("team workload: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		recent = s.recentTasks(gctx, s.cfg.Dashboard.RecentLimit)
		return nil
	})
	g.Go(func() error {
		activeProjects = s.activeProjects(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		err = logging.WrapError(ctx, err)
		slog.ErrorContext(logging.ErrorCtx(ctx, err), "dashboard summary failed", "error", err)
		return domain.DashboardSummary{}, fmt.Errorf("%w: %w", domain.ErrFetchDashboard, err)
	}

	summary := SummaryFromWorkload(workload)
	if avg := AverageCompletionDays(recent); avg > 0 {
		summary.AverageCompletionTime = &avg
	}

	result := domain.DashboardSummary{
		TotalEmployees: len(employees),
		TaskSummary:    summary,
		TeamMetrics: []domain.TeamMetrics{{
			TeamID:         s.cfg.ClickUp.TeamID,
			TeamName:       s.cfg.Dashboard.TeamName,
			MemberCount:    len(employees),
			ActiveProjects: activeProjects,
			CompletionRate: CompletionRate(summary.CompletedTasks, summary.TotalTasks),
			Workload:       ClassifyWorkload(workload.TotalTasks, len(employees)),
			TopPerformers:  RankTopPerformers(employees),
		}},
		RecentActivity: recent,
		GeneratedAt:    s.nower.Now(),
	}
	metrics.IncDashboardSummaries()
	s.recordDashboard(ctx, result)
	return result, nil
}

// RecentTasks возвращает последние обновлённые задачи. При ошибке ClickUp возвращается пустой список.
func (s *Service) RecentTasks(ctx context.Context, limit int) []domain.Task {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	return s.recentTasks(ctx, limit)
}

// recentTasks обходит первые пространства и списки команды и берёт самые свежие задачи из каждого списка.
func (s *Service) recentTasks(ctx context.Context, limit int) []domain.Task {
	if limit <= 0 {
		limit = s.cfg.Dashboard.RecentLimit
	}
	groups, err := s.recentTaskGroups(ctx)
	if err != nil {
		slog.WarnContext(ctx, "recent tasks unavailable, returning empty list", "error", err)
		metrics.IncAbsorbedFailures("recent_tasks")
		return []domain.Task{}
	}
	return MergeRecentTasks(groups, limit)
}

func (s *Service) recentTaskGroups(ctx context.Context) ([][]domain.Task, error) {
	spaces, err := s.gateway.Spaces(ctx, s.cfg.ClickUp.TeamID)
	if err != nil {
		return nil, err
	}
	reverse := true
	filter := domain.TaskFilter{OrderBy: "date_updated", Reverse: &reverse}

	var groups [][]domain.Task
	for _, space := range head(spaces, s.cfg.Dashboard.RecentSpaces) {
		lists, err := s.gateway.Lists(ctx, space.ID)
		if err != nil {
			return nil, fmt.Errorf("space %s lists: %w", space.ID, err)
		}
		for _, list := range head(lists, s.cfg.Dashboard.RecentLists) {
			tasks, err := s.gateway.Tasks(logging.WithLogListID(ctx, list.ID), list.ID, filter)
			if err != nil {
				return nil, fmt.Errorf("list %s tasks: %w", list.ID, err)
			}
			groups = append(groups, head(tasks, s.cfg.Dashboard.RecentPerList))
		}
	}
	return groups, nil
}

// activeProjects считает неархивные пространства команды. При ошибке возвращает 0.
func (s *Service) activeProjects(ctx context.Context) int {
	spaces, err := s.gateway.Spaces(ctx, s.cfg.ClickUp.TeamID)
	if err != nil {
		slog.WarnContext(ctx, "active projects unavailable, using zero", "error", err)
		metrics.IncAbsorbedFailures("active_projects")
		return 0
	}
	count := 0
	for _, space := range spaces {
		if !space.Archived {
			count++
		}
	}
	return count
}

func (s *Service) recordDashboard(ctx context.Context, summary domain.DashboardSummary) {
	if s.snapshots == nil {
		return
	}
	team := summary.TeamMetrics[0]
	snapshot := domain.DashboardSnapshot{
		TotalEmployees: summary.TotalEmployees,
		TotalTasks:     summary.TaskSummary.TotalTasks,
		CompletedTasks: summary.TaskSummary.CompletedTasks,
		OverdueTasks:   summary.TaskSummary.OverdueTasks,
		CompletionRate: team.CompletionRate,
		Workload:       team.Workload,
		CreatedAt:      summary.GeneratedAt,
	}
	err := s.inTransaction(ctx, func(ctx context.Context) error {
		return s.snapshots.SaveDashboardSnapshot(ctx, snapshot)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to save dashboard snapshot", "error", err)
		metrics.IncSnapshotFailures()
	}
}

func (s *Service) inTransaction(ctx context.Context, fn func(context.Context) error) error {
	if s.trMgr == nil {
		return fn(ctx)
	}
	return s.trMgr.Do(ctx, fn)
}

func head[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
