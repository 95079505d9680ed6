package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceLevelHandler adds source location attributes only for selected
// levels, keeping info-level output compact while warn and error records
// stay traceable. The wrapped handler must be built with AddSource false.
type sourceLevelHandler struct {
	inner  slog.Handler
	levels map[slog.Level]bool
}

func newSourceLevelHandler(inner slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		m[l] = true
	}
	return &sourceLevelHandler{inner: inner, levels: m}
}

func (h *sourceLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] {
		// Skip Callers, this frame and the slog front-end frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frames := runtime.CallersFrames(pcs[:])
		frame, _ := frames.Next()
		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *sourceLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceLevelHandler{inner: h.inner.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceLevelHandler{inner: h.inner.WithGroup(name), levels: h.levels}
}

func (h *sourceLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
