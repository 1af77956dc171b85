package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-dashboard-service/internal/domain"
)

func TestValidateIDs(t *testing.T) {
	require.NoError(t, ValidateListID("901"))
	require.EqualError(t, ValidateListID(" "), "listId is required")
	require.EqualError(t, ValidateTaskID(""), "taskId is required")
	require.EqualError(t, ValidateUserID(""), "userId is required")
	require.ErrorIs(t, ValidateUserID(strings.Repeat("1", 101)), domain.ErrInvalidInput)
}

func TestValidateLimit(t *testing.T) {
	require.NoError(t, ValidateLimit(0))
	require.NoError(t, ValidateLimit(50))
	require.ErrorIs(t, ValidateLimit(-1), domain.ErrInvalidInput)
}

func TestValidateTaskInputs(t *testing.T) {
	require.NoError(t, ValidateCreateTask(domain.CreateTaskInput{Name: "Interview"}))
	require.EqualError(t, ValidateCreateTask(domain.CreateTaskInput{}), "Task name is required")
	require.Error(t, ValidateCreateTask(domain.CreateTaskInput{Name: strings.Repeat("x", 1001)}))

	for _, p := range []int{1, 4} {
		priority := p
		require.NoError(t, ValidateCreateTask(domain.CreateTaskInput{Name: "x", Priority: &priority}))
	}
	zero := 0
	require.ErrorIs(t, ValidateUpdateTask(domain.UpdateTaskInput{Priority: &zero}), domain.ErrInvalidInput)

	empty := "  "
	require.Error(t, ValidateUpdateTask(domain.UpdateTaskInput{Name: &empty}))
	require.NoError(t, ValidateUpdateTask(domain.UpdateTaskInput{}))
}
