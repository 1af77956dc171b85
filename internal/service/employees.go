package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/logging"
	"hr-dashboard-service/internal/metrics"
)

// EmployeeTaskStats считает статистику задач сотрудника за windowDays.
// Ошибка ClickUp не пробрасывается: возвращается нулевая статистика.
func (s *Service) EmployeeTaskStats(ctx context.Context, userID string, windowDays int) domain.TaskStats {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	return s.employeeTaskStats(ctx, userID, windowDays)
}

func (s *Service) employeeTaskStats(ctx context.Context, userID string, windowDays int) domain.TaskStats {
	tasks, now, err := s.windowTasks(ctx, userID, windowDays)
	if err != nil {
		slog.WarnContext(logging.WithLogUserID(ctx, userID), "employee task stats unavailable, using zero stats", "error", err)
		metrics.IncAbsorbedFailures("employee_task_stats")
		return domain.TaskStats{}
	}
	return ComputeTaskStats(tasks, now)
}

// windowTasks загружает задачи сотрудника, созданные за последние windowDays, вместе с закрытыми.
func (s *Service) windowTasks(ctx context.Context, userID string, windowDays int) ([]domain.Task, time.Time, error) {
	if windowDays <= 0 {
		windowDays = s.cfg.Dashboard.EmployeeWindowDays
	}
	now := s.nower.Now()
	tasks, err := s.gateway.EmployeeTasks(ctx, userID, domain.EmployeeTasksOptions{
		IncludeCompleted: true,
		Start:            now.AddDate(0, 0, -windowDays),
		End:              now,
	})
	return tasks, now, err
}

// Employees возвращает участников команды со статистикой задач.
func (s *Service) Employees(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := s.longOperationContext(ctx)
	defer cancel()
	return s.employees(ctx)
}

// Employee возвращает одного сотрудника по ID пользователя ClickUp.
func (s *Service) Employee(ctx context.Context, userID string) (domain.Employee, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	member, err := s.findMember(ctx, userID)
	if err != nil {
		return domain.Employee{}, err
	}
	return s.toEmployee(member, s.employeeTaskStats(ctx, userID, 0)), nil
}

func (s *Service) employees(ctx context.Context) ([]domain.Employee, error) {
	members, err := s.gateway.TeamMembers(ctx, s.cfg.ClickUp.TeamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchEmployees, logging.WrapError(ctx, err))
	}

	// Ветки не возвращают ошибок: сбой одного сотрудника не отменяет остальных.
	employees := make([]domain.Employee, len(members))
	var g errgroup.Group
	g.SetLimit(s.cfg.Dashboard.MaxParallel)
	for i, member := range members {
		i, member := i, member
		g.Go(func() error {
			stats := s.employeeTaskStats(ctx, strconv.FormatInt(member.ID, 10), 0)
			employees[i] = s.toEmployee(member, stats)
			return nil
		})
	}
	_ = g.Wait()

	metrics.AddEmployeesProcessed(len(employees))
	return employees, nil
}

func (s *Service) findMember(ctx context.Context, userID string) (domain.User, error) {
	members, err := s.gateway.TeamMembers(ctx, s.cfg.ClickUp.TeamID)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", domain.ErrFetchEmployees, logging.WrapError(ctx, err))
	}
	for _, m := range members {
		if strconv.FormatInt(m.ID, 10) == userID {
			return m, nil
		}
	}
	return domain.User{}, domain.ErrEmployeeNotFound
}

func (s *Service) toEmployee(user domain.User, stats domain.TaskStats) domain.Employee {
	role := string(user.CustomRole)
	return domain.Employee{
		User:       user,
		Department: DepartmentFromRole(role),
		Position:   PositionFromRole(role),
		TaskStats:  stats,
	}
}
