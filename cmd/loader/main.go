// Command loader imports exported learner and log fixtures into the store.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"tracker/config"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/domain/validation"
	"tracker/internal/errors"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/metrics"
	"tracker/internal/infra/persistence/mongodb"
	"tracker/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	usersPath := flag.String("users", "", "JSON array of exported learners")
	logsPath := flag.String("logs", "", "JSON array of exported activity logs")
	flag.Parse()

	if *usersPath == "" && *logsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*usersPath, *logsPath); err != nil {
		slog.Error("Loading failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(usersPath, logsPath string) error {
	var (
		loader *Loader
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			metrics.New,
			validation.New,
			mongodb.New,
			mongodb.NewStore,
			impl.NewUserService,
			impl.NewLogService,
			NewLoader,
		),
		fx.Populate(&loader, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start loader")
	}

	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()

		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to stop loader cleanly", slog.Any("error", err))
		}
	}()

	users, logTotals, err := loader.Run(context.Background(), usersPath, logsPath)
	if err != nil {
		return err
	}

	logger.Info("Loading complete",
		slog.Int("users_inserted", users.Inserted),
		slog.Int("users_skipped", users.Skipped),
		slog.Int("logs_inserted", logTotals.Inserted),
		slog.Int("logs_skipped", logTotals.Skipped),
	)

	return nil
}
