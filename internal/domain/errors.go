package domain

import "errors"

// Доменные ошибки, используемые для обработки бизнес-логики.
// Эти ошибки преобразуются в HTTP-ответы в слое обработчиков.
var (
	// ErrEmployeeNotFound возникает, когда сотрудник с указанным ID отсутствует в команде.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrFetchEmployees возникает, когда не удалось получить участников команды.
	ErrFetchEmployees = errors.New("failed to fetch employee data")

	// ErrFetchDashboard возникает, когда одна из веток сводки дашборда завершилась ошибкой.
	ErrFetchDashboard = errors.New("failed to fetch dashboard data")

	// ErrPerformanceReport возникает, когда не удалось собрать отчёт об эффективности.
	ErrPerformanceReport = errors.New("failed to generate performance report")

	// ErrClickUpUnavailable возникает, когда проверка связи с ClickUp не прошла.
	ErrClickUpUnavailable = errors.New("clickup is unavailable")

	// ErrInvalidInput базовая ошибка валидации входных данных.
	ErrInvalidInput = errors.New("invalid input")

	ErrFetchTasks   = errors.New("failed to fetch tasks")
	ErrCreateTask   = errors.New("failed to create task")
	ErrUpdateTask   = errors.New("failed to update task")
	ErrFetchHistory = errors.New("failed to fetch report history")
)

// ValidationError ошибка валидации с сообщением для клиента.
type ValidationError struct {
	Message string
}

// NewValidationError создаёт ошибку валидации.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет сравнивать ошибку с ErrInvalidInput через errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
