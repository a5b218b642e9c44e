// Package logging builds the service's slog logger and carries the
// request-scoped logger through context.
//
// Robot operations log with the shared attribute helpers so every line for a
// robot can be found by the same keys:
//
//	logger.ErrorContext(ctx, "failed to fetch robot",
//	    logging.Operation("FindOne"),
//	    logging.RobotID(id),
//	    logging.Err(err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Attribute keys used on robot log lines.
const (
	KeyOperation = "operation"
	KeyRobotID   = "robot_id"
	KeyError     = "error"
)

// Output formats accepted by New. Anything else selects FormatJSON.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type loggerKey struct{}

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error", case-insensitive; an unknown name means info). Debug
// output carries the source location. Sensitive values are masked.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored by WithLogger, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// Operation names the robot service or store operation being logged.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// RobotID identifies the robot a line is about.
func RobotID(id int64) slog.Attr {
	return slog.Int64(KeyRobotID, id)
}

// OptionalRobotID is RobotID for a robot that may not have an ID yet; a nil
// id is logged as null.
func OptionalRobotID(id *int64) slog.Attr {
	if id == nil {
		return slog.Any(KeyRobotID, nil)
	}
	return RobotID(*id)
}

// Err attaches the full error chain.
func Err(err error) slog.Attr {
	return slog.Any(KeyError, err)
}
