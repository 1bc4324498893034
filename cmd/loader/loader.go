package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/schema"
	"tracker/internal/errors"
	"tracker/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// LoaderParams holds dependencies for Loader, injected by Fx.
type LoaderParams struct {
	fx.In

	UserUC usecase.UserUsecase
	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// Loader ingests exported user and log fixtures through the use cases, so the
// same validation applies as over HTTP.
type Loader struct {
	userUC usecase.UserUsecase
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// Totals counts the outcome of one file.
type Totals struct {
	Inserted int
	Skipped  int
}

func NewLoader(params LoaderParams) *Loader {
	return &Loader{
		userUC: params.UserUC,
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// Run ingests both files concurrently. An empty path is skipped. Bad records
// are logged and skipped; only unreadable files fail the run.
func (l *Loader) Run(ctx context.Context, usersPath, logsPath string) (users, logs Totals, err error) {
	g, gctx := errgroup.WithContext(ctx)

	if usersPath != "" {
		g.Go(func() error {
			var err error
			users, err = l.load(gctx, "user", usersPath, l.insertUser)

			return err
		})
	}
	if logsPath != "" {
		g.Go(func() error {
			var err error
			logs, err = l.load(gctx, "log", logsPath, l.insertLog)

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return users, logs, err
	}

	return users, logs, nil
}

func (l *Loader) load(ctx context.Context, kind, path string, insert func(context.Context, map[string]any) (entity.ID, error)) (Totals, error) {
	var totals Totals

	records, err := readRecords(path)
	if err != nil {
		return totals, err
	}

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return totals, errors.WithStack(err)
		}

		id, err := insert(ctx, record)
		if err != nil {
			totals.Skipped++
			l.logger.Warn("Skipping record",
				slog.String("kind", kind),
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}

		totals.Inserted++
		l.logger.Debug("Inserted record", slog.String("kind", kind), slog.String("id", id.Hex()))
	}

	l.logger.Info("Finished loading",
		slog.String("kind", kind),
		slog.String("path", path),
		slog.Int("inserted", totals.Inserted),
		slog.Int("skipped", totals.Skipped),
	)

	return totals, nil
}

func (l *Loader) insertUser(ctx context.Context, record map[string]any) (entity.ID, error) {
	var input entity.UserInput
	if err := schema.Decode(schema.User, normalizeUser(record), &input); err != nil {
		return entity.NilID, err
	}

	user, err := l.userUC.CreateUser(ctx, &input)
	if err != nil {
		return entity.NilID, err
	}

	return user.ID, nil
}

func (l *Loader) insertLog(ctx context.Context, record map[string]any) (entity.ID, error) {
	var input entity.LogInput
	if err := schema.Decode(schema.Log, normalizeLog(record), &input); err != nil {
		return entity.NilID, err
	}

	log, err := l.logUC.CreateLog(ctx, &input)
	if err != nil {
		return entity.NilID, err
	}

	return log.ID, nil
}

// readRecords reads a JSON array of objects, keeping numbers as json.Number.
func readRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return records, nil
}
