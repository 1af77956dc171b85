package logging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

type keyType int

const key = keyType(0)

// logCtx содержит контекстную информацию запроса для логирования.
type logCtx struct {
	RequestID       string
	Status          int
	RequestDuration string
	Method          string
	Path            string
	UserID          string
	ListID          string
	TaskID          string
	SpaceID         string
}

// attrs возвращает непустые поля контекста в виде атрибутов slog.
func (c logCtx) attrs() []slog.Attr {
	out := make([]slog.Attr, 0, 9)
	addString := func(k, v string) {
		if v != "" {
			out = append(out, slog.String(k, v))
		}
	}
	addString("request_id", c.RequestID)
	addString("method", c.Method)
	addString("path", c.Path)
	if c.Status != 0 {
		out = append(out, slog.Int("status", c.Status))
	}
	addString("duration", c.RequestDuration)
	addString("user_id", c.UserID)
	addString("list_id", c.ListID)
	addString("task_id", c.TaskID)
	addString("space_id", c.SpaceID)
	return out
}

// LoggerImpl оборачивает slog.Handler для добавления контекстной информации.
type LoggerImpl struct {
	next slog.Handler
}

func NewLoggerImpl(next slog.Handler) *LoggerImpl {
	return &LoggerImpl{next: next}
}

// Enabled проверяет, включён ли указанный уровень логирования.
func (h *LoggerImpl) Enabled(ctx context.Context, rec slog.Level) bool {
	return h.next.Enabled(ctx, rec)
}

// Handle обрабатывает запись лога, добавляя контекст запроса и место вызова.
func (h *LoggerImpl) Handle(ctx context.Context, rec slog.Record) error {
	if c, ok := ctx.Value(key).(logCtx); ok {
		rec.AddAttrs(c.attrs()...)
	}

	if rec.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{rec.PC})
		f, _ := fs.Next()
		rec.Add("source", fmt.Sprintf("%s:%d", f.File, f.Line))
	}

	return h.next.Handle(ctx, rec)
}

// WithAttrs добавляет атрибуты к следующему обработчику.
func (h *LoggerImpl) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LoggerImpl{next: h.next.WithAttrs(attrs)}
}

// WithGroup добавляет группу к следующему обработчику.
func (h *LoggerImpl) WithGroup(name string) slog.Handler {
	return &LoggerImpl{next: h.next.WithGroup(name)}
}
