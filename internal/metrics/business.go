package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dashboardSummaries = promauto.NewCounter(
		prometheusCounterOpts("dashboard_summaries_total", "Total number of computed dashboard summaries"),
	)
	performanceReports = promauto.NewCounter(
		prometheusCounterOpts("performance_reports_total", "Total number of generated performance reports"),
	)
	employeesProcessed = promauto.NewCounter(
		prometheusCounterOpts("employees_processed_total", "Total number of employees whose task stats were computed"),
	)
	tasksCreated = promauto.NewCounter(
		prometheusCounterOpts("tasks_created_total", "Total number of tasks created via the dashboard"),
	)
	tasksUpdated = promauto.NewCounter(
		prometheusCounterOpts("tasks_updated_total", "Total number of tasks updated via the dashboard"),
	)
	snapshotFailures = promauto.NewCounter(
		prometheusCounterOpts("snapshot_failures_total", "Total number of report snapshots that failed to persist"),
	)

	// absorbedFailures ошибки получения данных, заменённые нулевым результатом
	absorbedFailures = promauto.NewCounterVec(
		prometheusCounterOpts("fetch_failures_absorbed_total", "Fetch failures replaced with an empty result"),
		[]string{"call"},
	)
)

// IncDashboardSummaries увеличивает счётчик собранных сводок дашборда.
func IncDashboardSummaries() {
	dashboardSummaries.Inc()
}

// IncPerformanceReports увеличивает счётчик отчётов об эффективности.
func IncPerformanceReports() {
	performanceReports.Inc()
}

// AddEmployeesProcessed увеличивает счётчик обработанных сотрудников.
func AddEmployeesProcessed(delta int) {
	if delta <= 0 {
		return
	}
	employeesProcessed.Add(float64(delta))
}

// IncTasksCreated увеличивает счётчик созданных задач.
func IncTasksCreated() {
	tasksCreated.Inc()
}

// IncTasksUpdated увеличивает счётчик обновлённых задач.
func IncTasksUpdated() {
	tasksUpdated.Inc()
}

// IncSnapshotFailures увеличивает счётчик неудачных сохранений истории.
func IncSnapshotFailures() {
	snapshotFailures.Inc()
}

// IncAbsorbedFailures учитывает ошибку, поглощённую в точке вызова call.
func IncAbsorbedFailures(call string) {
	absorbedFailures.WithLabelValues(call).Inc()
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Name: name,
		Help: help,
	}
}
