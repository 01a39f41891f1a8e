package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphql-todo/backend/internal/config"
)

var envKeys = []string{
	"CONFIG_FILE", "PORT", "GIN_MODE", "CORS_ALLOW_ORIGINS", "GRAPHQL_MAX_DEPTH",
	"METRICS_ENABLED", "TRACING_ENABLED", "SERVICE_NAME", "SHUTDOWN_TIMEOUT",
}

// clearEnv はテスト終了時に元へ戻るよう、関連する環境変数を空にします。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":4000", cfg.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("GRAPHQL_MAX_DEPTH", "5")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("SERVICE_NAME", "todo-test")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 5, cfg.GraphQLMaxDepth)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, "todo-test", cfg.ServiceName)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv は既存の環境変数を上書きしないため、PORT は未設定にしておく
	require.NoError(t, os.Unsetenv("PORT"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=4100\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PORT") })

	cfg, err := config.Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.Port)
}

func TestLoad_YAMLFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)

	yamlFile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: 9000
gin_mode: test
cors_allow_origins:
  - http://yaml.example
graphql_max_depth: 3
tracing_enabled: true
shutdown_timeout: 10s
`
	require.NoError(t, os.WriteFile(yamlFile, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", yamlFile)
	t.Setenv("PORT", "9100")

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port, "environment should win over YAML")
	assert.Equal(t, "test", cfg.GinMode)
	assert.Equal(t, []string{"http://yaml.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 3, cfg.GraphQLMaxDepth)
	assert.True(t, cfg.TracingEnabled)
	assert.True(t, cfg.MetricsEnabled, "unset YAML keys keep their defaults")
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PORT", "not-a-number"},
		{"PORT", "70000"},
		{"PORT", "0"},
		{"GRAPHQL_MAX_DEPTH", "deep"},
		{"GRAPHQL_MAX_DEPTH", "-1"},
		{"METRICS_ENABLED", "maybe"},
		{"TRACING_ENABLED", "sometimes"},
		{"SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := config.Load(missingEnvFile(t))
	assert.Error(t, err)
}
