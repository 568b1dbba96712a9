// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).ErrorContext(ctx, "move rejected",
//	    slog.String("operation", "MoveTask"),
//	    slog.String("task_id", id),
//	    slog.Any("error", err),
//	)
//
// Error logs name the operation, the entity ids involved, and the full error
// chain. Inside a request the context logger already carries request_id,
// correlation_id and actor.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
)

type contextKey struct{}

// New creates a logger from cfg. Level accepts the slog names (debug, info,
// warn, error, optionally with an offset such as "warn+2") in any case and
// falls back to info. Format "text" selects the text handler; anything else
// is JSON. Debug level adds source locations.
//
// Every handler redacts credentials and user contact details; see redactAttr.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	lvl := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel converts a level name to slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
