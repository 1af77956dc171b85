package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"hr-dashboard-service/internal/domain"
)

const (
	lightWorkloadLimit    = 5
	moderateWorkloadLimit = 15
	topPerformersCount    = 3
	defaultPosition       = "Team Member"
	defaultDepartment     = "General"
)

// departmentKeywords проверяются по порядку, первое совпадение выигрывает.
var departmentKeywords = []struct {
	keyword    string
	department string
}{
	{"hr", "Human Resources"},
	{"human resources", "Human Resources"},
	{"engineering", "Engineering"},
	{"dev", "Engineering"},
	{"developer", "Engineering"},
	{"marketing", "Marketing"},
	{"sales", "Sales"},
	{"finance", "Finance"},
	{"operations", "Operations"},
	{"design", "Design"},
	{"product", "Product"},
}

// ClassifyWorkload определяет уровень загрузки по числу задач на участника:
// меньше 5 light, меньше 15 moderate, иначе heavy.
func ClassifyWorkload(totalTasks, memberCount int) domain.WorkloadLevel {
	if memberCount <= 0 {
		if totalTasks <= 0 {
			return domain.WorkloadLight
		}
		return domain.WorkloadHeavy
	}
	perMember := float64(totalTasks) / float64(memberCount)
	switch {
	case perMember < lightWorkloadLimit:
		return domain.WorkloadLight
	case perMember < moderateWorkloadLimit:
		return domain.WorkloadModerate
	default:
		return domain.WorkloadHeavy
	}
}

// CompletionRate процент завершённых задач, округлённый и ограниченный [0,100].
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return clampPercent(math.Round(float64(completed) / float64(total) * 100))
}

// ProductivityScore оценка 0..100: доля завершённых минус половина доли просроченных.
func ProductivityScore(stats domain.TaskStats) int {
	if stats.Total <= 0 {
		return 0
	}
	total := float64(stats.Total)
	score := float64(stats.Completed)/total*100 - float64(stats.Overdue)/total*50
	return clampPercent(math.Round(score))
}

// RankTopPerformers возвращает до трёх сотрудников с наибольшим completed - overdue.
// При равенстве сохраняется исходный порядок.
func RankTopPerformers(employees []domain.Employee) []domain.User {
	ranked := make([]domain.Employee, len(employees))
	copy(ranked, employees)
	sort.SliceStable(ranked, func(i, j int) bool {
		return performerScore(ranked[i]) > performerScore(ranked[j])
	})
	if len(ranked) > topPerformersCount {
		ranked = ranked[:topPerformersCount]
	}
	users := make([]domain.User, 0, len(ranked))
	for _, e := range ranked {
		users = append(users, e.User)
	}
	return users
}

func performerScore(e domain.Employee) int {
	return e.TaskStats.Completed - e.TaskStats.Overdue
}

// ComputeTaskStats раскладывает задачи по типу статуса. Задачи других типов
// учитываются только в Total.
func ComputeTaskStats(tasks []domain.Task, now time.Time) domain.TaskStats {
	stats := domain.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		switch {
		case task.Status.Type == domain.StatusTypeClosed:
			stats.Completed++
		case task.Status.Type.IsActive():
			stats.InProgress++
			if task.IsOverdue(now) {
				stats.Overdue++
			}
		}
	}
	return stats
}

// AverageCompletionDays среднее время от создания до закрытия в днях, два знака после запятой.
// Учитываются только задачи с обеими датами; без таких задач результат 0.
func AverageCompletionDays(tasks []domain.Task) float64 {
	var (
		sum   time.Duration
		count int
	)
	for _, task := range tasks {
		if task.DateCreated.IsZero() || task.DateClosed.IsZero() {
			continue
		}
		d := task.DateClosed.Sub(task.DateCreated.Time)
		if d < 0 {
			continue
		}
		sum += d
		count++
	}
	if count == 0 {
		return 0
	}
	days := sum.Hours() / 24 / float64(count)
	return math.Round(days*100) / 100
}

// DepartmentFromRole определяет отдел по ключевым словам в роли.
func DepartmentFromRole(role string) string {
	lower := strings.ToLower(role)
	if lower == "" {
		return defaultDepartment
	}
	for _, kw := range departmentKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.department
		}
	}
	return defaultDepartment
}

// PositionFromRole возвращает должность: пользовательскую роль или "Team Member".
func PositionFromRole(role string) string {
	if strings.TrimSpace(role) == "" {
		return defaultPosition
	}
	return role
}

// MergeRecentTasks объединяет группы задач, сортирует по дате обновления по убыванию
// и обрезает до limit. limit <= 0 отключает обрезку.
func MergeRecentTasks(groups [][]domain.Task, limit int) []domain.Task {
	merged := make([]domain.Task, 0)
	for _, g := range groups {
		merged = append(merged, g...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DateUpdated.After(merged[j].DateUpdated.Time)
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// SummaryFromWorkload строит сводку задач из нагрузки команды.
func SummaryFromWorkload(w domain.Workload) domain.TaskSummary {
	inProgress := w.TotalTasks - w.CompletedTasks
	if inProgress < 0 {
		inProgress = 0
	}
	return domain.TaskSummary{
		TotalTasks:      w.TotalTasks,
		CompletedTasks:  w.CompletedTasks,
		InProgressTasks: inProgress,
		OverdueTasks:    w.OverdueTasks,
		TasksByStatus:   nonNilCounts(w.ByStatus),
		TasksByPriority: nonNilCounts(w.ByPriority),
		TasksByAssignee: nonNilCounts(w.ByAssignee),
	}
}

func nonNilCounts(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func clampPercent(v float64) int {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}
