package service

import (
	"strings"

	"hr-dashboard-service/internal/domain"
)

const (
	maxIDLength       = 100
	maxTaskNameLength = 1000
	minPriority       = 1
	maxPriority       = 4
)

// ValidateListID проверяет ID списка ClickUp.
func ValidateListID(listID string) error {
	return validateID(listID, "listId is required", "listId too long (max 100 characters)")
}

// ValidateTaskID проверяет ID задачи ClickUp.
func ValidateTaskID(taskID string) error {
	return validateID(taskID, "taskId is required", "taskId too long (max 100 characters)")
}

// ValidateUserID проверяет ID пользователя ClickUp.
func ValidateUserID(userID string) error {
	return validateID(userID, "userId is required", "userId too long (max 100 characters)")
}

func validateID(id, emptyMsg, longMsg string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError(emptyMsg)
	}
	if len(id) > maxIDLength {
		return domain.NewValidationError(longMsg)
	}
	return nil
}

// ValidateLimit проверяет ограничение размера выборки.
func ValidateLimit(limit int) error {
	if limit < 0 {
		return domain.NewValidationError("limit must not be negative")
	}
	return nil
}

// ValidateCreateTask проверяет тело создания задачи.
func ValidateCreateTask(input domain.CreateTaskInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.NewValidationError("Task name is required")
	}
	if len(name) > maxTaskNameLength {
		return domain.NewValidationError("task name too long (max 1000 characters)")
	}
	return validatePriority(input.Priority)
}

// ValidateUpdateTask проверяет тело обновления задачи.
func ValidateUpdateTask(input domain.UpdateTaskInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return domain.NewValidationError("task name cannot be empty")
	}
	return validatePriority(input.Priority)
}

func validatePriority(priority *int) error {
	if priority != nil && (*priority < minPriority || *priority > maxPriority) {
		return domain.NewValidationError("priority must be between 1 and 4")
	}
	return nil
}
