package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler    slog.Handler
	withSource map[slog.Level]bool
}

// NewConditionalSourceHandler wraps a handler so that the source location is
// attached only to records at the given levels. The wrapped handler should be
// built with AddSource disabled.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	withSource := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		withSource[level] = true
	}
	return &conditionalSourceHandler{
		handler:    handler,
		withSource: withSource,
	}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.withSource[r.Level] && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{
		handler:    h.handler.WithAttrs(attrs),
		withSource: h.withSource,
	}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{
		handler:    h.handler.WithGroup(name),
		withSource: h.withSource,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
