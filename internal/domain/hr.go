package domain

import "time"

// WorkloadLevel классифицирует загрузку команды по количеству задач на участника.
type WorkloadLevel string

const (
	WorkloadLight    WorkloadLevel = "light"
	WorkloadModerate WorkloadLevel = "moderate"
	WorkloadHeavy    WorkloadLevel = "heavy"
)

// TaskStats снимок статистики задач сотрудника за скользящее окно.
type TaskStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Overdue    int `json:"overdue"`
}

// Employee пользователь ClickUp, дополненный HR-атрибутами. Пересчитывается при каждом запросе.
type Employee struct {
	User
	Department string    `json:"department"`
	Position   string    `json:"position"`
	TaskStats  TaskStats `json:"taskStats"`
}

// TaskSummary содержит сводные счётчики по набору задач.
type TaskSummary struct {
	TotalTasks            int            `json:"totalTasks"`
	CompletedTasks        int            `json:"completedTasks"`
	InProgressTasks       int            `json:"inProgressTasks"`
	OverdueTasks          int            `json:"overdueTasks"`
	TasksByStatus         map[string]int `json:"tasksByStatus"`
	TasksByPriority       map[string]int `json:"tasksByPriority"`
	TasksByAssignee       map[string]int `json:"tasksByAssignee"`
	AverageCompletionTime *float64       `json:"averageCompletionTime,omitempty"`
}

// TeamMetrics метрики команды для дашборда.
type TeamMetrics struct {
	TeamID         string        `json:"teamId"`
	TeamName       string        `json:"teamName"`
	MemberCount    int           `json:"memberCount"`
	ActiveProjects int           `json:"activeProjects"`
	CompletionRate int           `json:"completionRate"`
	Workload       WorkloadLevel `json:"workload"`
	TopPerformers  []User        `json:"topPerformers"`
}

// DashboardSummary итоговые данные главной страницы дашборда.
type DashboardSummary struct {
	TotalEmployees int           `json:"totalEmployees"`
	TaskSummary    TaskSummary   `json:"taskSummary"`
	TeamMetrics    []TeamMetrics `json:"teamMetrics"`
	RecentActivity []Task        `json:"recentActivity"`
	GeneratedAt    time.Time     `json:"generatedAt"`
}

// PerformanceReport отчёт об эффективности сотрудника за N дней.
type PerformanceReport struct {
	Employee              Employee  `json:"employee"`
	TasksCompleted        int       `json:"tasksCompleted"`
	AverageCompletionTime float64   `json:"averageCompletionTime"`
	ProductivityScore     int       `json:"productivityScore"`
	RecentTasks           []Task    `json:"recentTasks"`
	WindowDays            int       `json:"windowDays"`
	GeneratedAt           time.Time `json:"generatedAt"`
}

// DashboardSnapshot сохранённый срез сводки дашборда.
type DashboardSnapshot struct {
	ID             string        `json:"id"`
	TotalEmployees int           `json:"totalEmployees"`
	TotalTasks     int           `json:"totalTasks"`
	CompletedTasks int           `json:"completedTasks"`
	OverdueTasks   int           `json:"overdueTasks"`
	CompletionRate int           `json:"completionRate"`
	Workload       WorkloadLevel `json:"workload"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// PerformanceSnapshot сохранённый срез отчёта об эффективности.
type PerformanceSnapshot struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"userId"`
	WindowDays            int       `json:"windowDays"`
	TasksCompleted        int       `json:"tasksCompleted"`
	AverageCompletionDays float64   `json:"averageCompletionTime"`
	ProductivityScore     int       `json:"productivityScore"`
	CreatedAt             time.Time `json:"createdAt"`
}
