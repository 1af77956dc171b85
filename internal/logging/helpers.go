package logging

import "context"

// with копирует контекст логирования из ctx, применяет mutate и кладёт результат обратно.
func with(ctx context.Context, mutate func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	mutate(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRequestID добавляет request ID в контекст.
func WithLogRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithLogRequestPath добавляет путь запроса в контекст.
func WithLogRequestPath(ctx context.Context, path string) context.Context {
	return with(ctx, func(c *logCtx) { c.Path = path })
}

// WithLogRequestMethod добавляет метод запроса в контекст.
func WithLogRequestMethod(ctx context.Context, method string) context.Context {
	return with(ctx, func(c *logCtx) { c.Method = method })
}

// WithLogRequestStatus добавляет статус ответа в контекст.
func WithLogRequestStatus(ctx context.Context, status int) context.Context {
	return with(ctx, func(c *logCtx) { c.Status = status })
}

// WithLogRequestDuration добавляет длительность запроса в контекст.
func WithLogRequestDuration(ctx context.Context, duration string) context.Context {
	return with(ctx, func(c *logCtx) { c.RequestDuration = duration })
}

// WithLogUserID добавляет ID сотрудника ClickUp в контекст.
func WithLogUserID(ctx context.Context, userID string) context.Context {
	return with(ctx, func(c *logCtx) { c.UserID = userID })
}

// WithLogListID добавляет ID списка задач в контекст.
func WithLogListID(ctx context.Context, listID string) context.Context {
	return with(ctx, func(c *logCtx) { c.ListID = listID })
}

// WithLogTaskID добавляет ID задачи в контекст.
func WithLogTaskID(ctx context.Context, taskID string) context.Context {
	return with(ctx, func(c *logCtx) { c.TaskID = taskID })
}

// WithLogSpaceID добавляет ID пространства в контекст.
func WithLogSpaceID(ctx context.Context, spaceID string) context.Context {
	return with(ctx, func(c *logCtx) { c.SpaceID = spaceID })
}
