package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/robot-service/internal/platform/logging"
)

const defaultSlowThreshold = 200 * time.Millisecond

// slogAdapter routes gorm's logging through slog. Record-not-found is never
// logged as an error because absence is a normal lookup result.
type slogAdapter struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*slogAdapter)(nil)

func newSlogAdapter(logger *slog.Logger) *slogAdapter {
	return &slogAdapter{
		logger:        logger,
		level:         gormlogger.Warn,
		slowThreshold: defaultSlowThreshold,
	}
}

func (l *slogAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *slogAdapter) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *slogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *slogAdapter) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *slogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		query, rows := fc()
		l.logger.ErrorContext(ctx, "sql query failed",
			slog.String("sql", query),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			logging.Err(err),
		)
	case elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		query, rows := fc()
		l.logger.WarnContext(ctx, "slow sql query",
			slog.String("sql", query),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.slowThreshold),
		)
	case l.logger.Enabled(ctx, slog.LevelDebug):
		query, rows := fc()
		l.logger.DebugContext(ctx, "sql query",
			slog.String("sql", query),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}
