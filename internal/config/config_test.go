package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout.Read)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout.Shutdown)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 0, cfg.RateLimit.Writes)
	assert.False(t, cfg.RateLimit.TrustProxy)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yaml", `
http:
  port: 9000
  timeout:
    read: 2s
log:
  level: debug
metrics:
  enabled: true
  token: from-yaml
ratelimit:
  writes: 10
`)
	dotenv := writeFile(t, dir, ".env", "PERFUMES_METRICS_TOKEN=from-dotenv\nPERFUMES_LOG_LEVEL=warn\nOTHER_VAR=ignored\n")
	t.Setenv("PERFUMES_LOG_LEVEL", "error")
	t.Setenv("PERFUMES_SEED_ENABLED", "false")
	t.Setenv("PERFUMES_RATELIMIT_TRUSTPROXY", "true")

	cfg, err := Load(yml, dotenv)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeout.Read)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout.Write, "unset keys keep defaults")
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "from-dotenv", cfg.Metrics.Token)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 10, cfg.RateLimit.Writes)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Seed.Enabled)
	assert.True(t, cfg.RateLimit.TrustProxy)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "port", env: map[string]string{"PERFUMES_HTTP_PORT": "70000"}},
		{name: "timeout", env: map[string]string{"PERFUMES_HTTP_TIMEOUT_WRITE": "0s"}},
		{name: "log level", env: map[string]string{"PERFUMES_LOG_LEVEL": "chatty"}},
		{name: "rate limit", env: map[string]string{"PERFUMES_RATELIMIT_WRITES": "-1"}},
		{name: "rate window", env: map[string]string{"PERFUMES_RATELIMIT_WRITES": "5", "PERFUMES_RATELIMIT_WINDOW": "0s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load("", "")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yaml", "http: [port")

	_, err := Load(yml, "")
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "http.timeout.read", envKey("PERFUMES_HTTP_TIMEOUT_READ"))
	assert.Equal(t, "seed.enabled", envKey("PERFUMES_SEED_ENABLED"))
}
