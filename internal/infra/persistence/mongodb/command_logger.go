package mongodb

import (
	"context"
	"log/slog"
	"time"

	"workbench/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger forwards driver command events to slog.
type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := &commandLogger{
		logger:        baseLogger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Int64("request_id", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
	}

	switch {
	case evt.Duration >= l.slowThreshold:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)
	case l.debug:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", attrs...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB command failed",
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Int64("request_id", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
		slog.Any("error", evt.Failure),
	)
}
