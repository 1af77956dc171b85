package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLogContextHelpersMutateSameStruct(t *testing.T) {
	ctx := context.Background()
	ctx = WithLogRequestID(ctx, "req")
	ctx = WithLogRequestPath(ctx, "/employees")
	ctx = WithLogRequestMethod(ctx, "GET")
	ctx = WithLogRequestStatus(ctx, 200)
	ctx = WithLogRequestDuration(ctx, "5ms")
	ctx = WithLogUserID(ctx, "183")
	ctx = WithLogListID(ctx, "list-1")
	ctx = WithLogTaskID(ctx, "task-1")
	ctx = WithLogSpaceID(ctx, "space-1")

	value, ok := ctx.Value(key).(logCtx)
	require.True(t, ok)
	require.Equal(t, "req", value.RequestID)
	require.Equal(t, "/employees", value.Path)
	require.Equal(t, "GET", value.Method)
	require.Equal(t, 200, value.Status)
	require.Equal(t, "5ms", value.RequestDuration)
	require.Equal(t, "183", value.UserID)
	require.Equal(t, "list-1", value.ListID)
	require.Equal(t, "task-1", value.TaskID)
	require.Equal(t, "space-1", value.SpaceID)
}

func TestWithLogDoesNotLeakIntoParentContext(t *testing.T) {
	parent := WithLogRequestID(context.Background(), "req")
	child := WithLogUserID(parent, "42")

	parentValue := parent.Value(key).(logCtx)
	childValue := child.Value(key).(logCtx)
	require.Empty(t, parentValue.UserID)
	require.Equal(t, "42", childValue.UserID)
	require.Equal(t, "req", childValue.RequestID)
}
