package clickup

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"hr-dashboard-service/internal/domain"
)

const noPriority = "none"

// EmployeeTasks обходит все пространства и списки команды и собирает задачи сотрудника.
func (c *Client) EmployeeTasks(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
	includeClosed := opts.IncludeCompleted
	filter := domain.TaskFilter{
		Assignees:     []string{userID},
		IncludeClosed: &includeClosed,
	}
	if !opts.Start.IsZero() {
		start := opts.Start
		filter.DateCreatedGt = &start
	}
	if !opts.End.IsZero() {
		end := opts.End
		filter.DateCreatedLt = &end
	}

	var tasks []domain.Task
	err := c.walkLists(ctx, "", func(list domain.List) error {
		listTasks, err := c.Tasks(ctx, list.ID, filter)
		if err != nil {
			return err
		}
		tasks = append(tasks, listTasks...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("employee %s tasks: %w", userID, err)
	}
	return tasks, nil
}

// TeamWorkload считает открытые задачи команды по статусам, исполнителям и приоритетам.
func (c *Client) TeamWorkload(ctx context.Context, teamID string) (domain.Workload, error) {
	includeClosed := false
	filter := domain.TaskFilter{IncludeClosed: &includeClosed}
	now := c.now.Now()

	workload := domain.NewWorkload()
	err := c.walkLists(ctx, teamID, func(list domain.List) error {
		tasks, err := c.Tasks(ctx, list.ID, filter)
		if err != nil {
			return err
		}
		for _, task := range tasks {
			workload.TotalTasks++
			workload.ByStatus[task.Status.Status]++
			workload.ByPriority[priorityKey(task.Priority)]++
			for _, assignee := range task.Assignees {
				workload.ByAssignee[strconv.FormatInt(assignee.ID, 10)]++
			}
			if IsCompleted(task) {
				workload.CompletedTasks++
			}
			if task.IsOverdue(now) {
				workload.OverdueTasks++
			}
		}
		return nil
	})
	if err != nil {
		return domain.Workload{}, fmt.Errorf("team workload: %w", err)
	}
	return workload, nil
}

// TestConnection проверяет доступность ClickUp запросом текущего пользователя.
func (c *Client) TestConnection(ctx context.Context) bool {
	if _, err := c.AuthorizedUser(ctx); err != nil {
		slog.ErrorContext(ctx, "clickup connection test failed", "error", err)
		return false
	}
	return true
}

// IsCompleted сообщает, считается ли задача завершённой.
func IsCompleted(task domain.Task) bool {
	return task.Status.Type == domain.StatusTypeClosed || strings.EqualFold(task.Status.Status, "complete")
}

func priorityKey(p *domain.Priority) string {
	if p == nil || p.Priority == "" {
		return noPriority
	}
	return strings.ToLower(p.Priority)
}

func (c *Client) walkLists(ctx context.Context, teamID string, visit func(domain.List) error) error {
	spaces, err := c.Spaces(ctx, teamID)
	if err != nil {
		return err
	}
	for _, space := range spaces {
		lists, err := c.Lists(ctx, space.ID)
		if err != nil {
			return err
		}
		for _, list := range lists {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := visit(list); err != nil {
				return err
			}
		}
	}
	return nil
}
