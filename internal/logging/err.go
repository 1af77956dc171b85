package logging

import (
	"context"
	"errors"
)

// errorWithLogCtx ошибка сервиса вместе с полями логирования, собранными до её возврата.
type errorWithLogCtx struct {
	next error
	ctx  logCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.next.Error()
}

func (e *errorWithLogCtx) Unwrap() error {
	return e.next
}

// WrapError запоминает в ошибке поля логирования из ctx (user_id, list_id, task_id и т.д.).
func WrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	c, _ := ctx.Value(key).(logCtx)
	return &errorWithLogCtx{next: err, ctx: c}
}

// ErrorCtx возвращает ctx, дополненный полями, сохранёнными в err через WrapError.
// Непустые поля ошибки перекрывают поля ctx.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *errorWithLogCtx
	if !errors.As(err, &e) {
		return ctx
	}
	c, _ := ctx.Value(key).(logCtx)
	return context.WithValue(ctx, key, c.merge(e.ctx))
}

func (c logCtx) merge(over logCtx) logCtx {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&c.RequestID, over.RequestID)
	pick(&c.Method, over.Method)
	pick(&c.Path, over.Path)
	pick(&c.RequestDuration, over.RequestDuration)
	pick(&c.UserID, over.UserID)
	pick(&c.ListID, over.ListID)
	pick(&c.TaskID, over.TaskID)
	pick(&c.SpaceID, over.SpaceID)
	if over.Status != 0 {
		c.Status = over.Status
	}
	return c
}
