package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"tracker/internal/domain/validation"
	"tracker/internal/infra/persistence/memory"
	"tracker/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	params := impl.RecordServiceParams{
		Store:     memory.NewStore(),
		Validator: validation.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return NewLoader(LoaderParams{
		UserUC: impl.NewUserService(params),
		LogUC:  impl.NewLogService(params),
		Logger: params.Logger,
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoader_Run(t *testing.T) {
	loader := newTestLoader(t)

	usersPath := writeFile(t, "users.json", `[
		{"id": 101, "name": "Ann", "gender": "female", "launch_count": 2},
		{"tg_id": 102, "language": "de"},
		{"tg_id": 103, "bundleVersionAtInstall": 4}
	]`)
	logsPath := writeFile(t, "logs.json", `[
		{"learner_id": 101, "activity_id": "a1", "type": "quiz", "value": 1,
		 "start_date": "2024-05-01T10:00:00", "completion_date": "2024-05-01T10:05:00"},
		{"learner_id": 101, "activity_id": "a2", "type": "quiz",
		 "start_date": "not a date", "completion_date": "2024-05-01T10:05:00"}
	]`)

	users, logs, err := loader.Run(context.Background(), usersPath, logsPath)
	require.NoError(t, err)
	assert.Equal(t, Totals{Inserted: 2, Skipped: 1}, users)
	assert.Equal(t, Totals{Inserted: 1, Skipped: 1}, logs)

	user, err := loader.userUC.GetUserByTelegramID(context.Background(), 103)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", user.Name)
	require.NotNil(t, user.BundleVersionAtInstall)
	assert.Equal(t, 4, *user.BundleVersionAtInstall)

	stored, err := loader.logUC.ListLogsByUser(context.Background(), "101")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.NotNil(t, stored[0].Value)
	assert.Equal(t, "1", *stored[0].Value)
}

func TestLoader_Run_OnlyOneFile(t *testing.T) {
	loader := newTestLoader(t)

	usersPath := writeFile(t, "users.json", `[{"tg_id": 1, "name": "Solo"}]`)

	users, logs, err := loader.Run(context.Background(), usersPath, "")
	require.NoError(t, err)
	assert.Equal(t, Totals{Inserted: 1}, users)
	assert.Equal(t, Totals{}, logs)
}

func TestLoader_Run_UnreadableFile(t *testing.T) {
	loader := newTestLoader(t)

	_, _, err := loader.Run(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)

	broken := writeFile(t, "logs.json", `{"not": "an array"}`)
	_, _, err = loader.Run(context.Background(), "", broken)
	assert.Error(t, err)
}
