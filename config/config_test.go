package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: tracker
  log:
    level: debug
http:
  port: 8000
mongo:
  uri: ""
  database: tracker_test
  connectTimeout: 3s
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", testYAML)
	t.Chdir(dir)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "tracker_test", cfg.Mongo.Database)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
}

func TestNew_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", testYAML)
	writeFile(t, dir, ".env", "MONGO_URI=mongodb://dotenv:27017\n")
	t.Chdir(dir)
	unsetEnv(t, "MONGO_URI")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://dotenv:27017", cfg.Mongo.URI)
}

func TestNew_MissingMongoURI(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", testYAML)
	t.Chdir(dir)
	unsetEnv(t, "MONGO_URI")

	_, err := New()
	assert.ErrorIs(t, err, ErrMissingMongoURI)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://x"}}
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultConnectTimeout, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)

	assert.ErrorIs(t, (&Config{}).applyDefaults(), ErrMissingMongoURI)
}
