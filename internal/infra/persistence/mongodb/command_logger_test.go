package mongodb

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func finished(name string, elapsed time.Duration) event.CommandFinishedEvent {
	return event.CommandFinishedEvent{CommandName: name, Duration: elapsed, RequestID: 7, ConnectionID: "conn-1"}
}

func TestCommandMonitor_SlowCommandIsWarned(t *testing.T) {
	logger, buf := newBufferLogger()
	monitor := newCommandMonitor(logger, metrics.New(), &config.Config{Mongo: &config.MongoConfig{SlowThreshold: 50 * time.Millisecond}})

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{CommandFinishedEvent: finished("find", 10*time.Millisecond)})
	assert.Empty(t, buf.String())

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{CommandFinishedEvent: finished("find", 80*time.Millisecond)})
	assert.Contains(t, buf.String(), "MongoDB slow command")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestCommandMonitor_VerboseLogsEveryCommand(t *testing.T) {
	logger, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true

	monitor := newCommandMonitor(logger, nil, cfg)
	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{CommandFinishedEvent: finished("insert", time.Millisecond)})

	assert.Contains(t, buf.String(), "MongoDB command")
	assert.Contains(t, buf.String(), "command=insert")
}

func TestCommandMonitor_FailureIsLogged(t *testing.T) {
	logger, buf := newBufferLogger()
	monitor := newCommandMonitor(logger, nil, nil)

	monitor.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: finished("update", time.Millisecond),
		Failure:              "boom",
	})

	assert.Contains(t, buf.String(), "MongoDB command failed")
	assert.Contains(t, buf.String(), "error=boom")
}
