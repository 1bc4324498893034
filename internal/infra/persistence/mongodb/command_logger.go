package mongodb

import (
	"context"
	"log/slog"
	"time"

	"tracker/config"
	"tracker/internal/infra/metrics"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

type commandLogger struct {
	logger        *slog.Logger
	metrics       *metrics.Metrics
	verbose       bool
	slowThreshold time.Duration
}

func newCommandMonitor(baseLogger *slog.Logger, m *metrics.Metrics, cfg *config.Config) *event.CommandMonitor {
	l := &commandLogger{
		logger:        baseLogger,
		metrics:       m,
		slowThreshold: defaultSlowCommandThreshold,
	}
	if cfg != nil {
		l.verbose = cfg.Env.Debug
		if cfg.Mongo != nil && cfg.Mongo.SlowThreshold > 0 {
			l.slowThreshold = cfg.Mongo.SlowThreshold
		}
	}

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, e *event.CommandSucceededEvent) {
	l.metrics.ObserveStoreCommand(e.CommandName, "ok", e.Duration)

	if l.logger == nil {
		return
	}

	if l.shouldLogSlow(e.Duration) {
		attrs := append(l.commandAttrs(&e.CommandFinishedEvent), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)

		return
	}

	if l.verbose {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", l.commandAttrs(&e.CommandFinishedEvent)...)
	}
}

func (l *commandLogger) failed(ctx context.Context, e *event.CommandFailedEvent) {
	l.metrics.ObserveStoreCommand(e.CommandName, "error", e.Duration)

	if l.logger == nil {
		return
	}

	attrs := append(l.commandAttrs(&e.CommandFinishedEvent), slog.String("error", e.Failure))
	l.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed", attrs...)
}

func (l *commandLogger) commandAttrs(e *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", e.CommandName),
		slog.Int64("requestId", e.RequestID),
		slog.String("connectionId", e.ConnectionID),
		slog.Duration("elapsed", e.Duration),
	}
}

func (l *commandLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold
}
