package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Session reads and writes are single-row statements; anything slower is worth a warning.
const sessionSlowQuery = 200 * time.Millisecond

// gormSlogLogger routes gorm's logging through slog with cookie values redacted.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger.With(slog.String("component", "session_store")),
		level:         level,
		slowThreshold: sessionSlowQuery,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "Session store", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// A missing row is a normal cookie miss and is not logged.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Session query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow session query", slog.Duration("slow_threshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Session query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", redactValues(sql)),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// redactValues blanks quoted literals so cookie values never reach the log.
func redactValues(sql string) string {
	var out strings.Builder
	out.Grow(len(sql))

	inQuote := false
	for _, r := range sql {
		switch {
		case r == '\'':
			if !inQuote {
				out.WriteString("'***")
			} else {
				out.WriteRune(r)
			}
			inQuote = !inQuote
		case !inQuote:
			out.WriteRune(r)
		}
	}

	return out.String()
}
