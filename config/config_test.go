package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-orchestrator/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, 8001, cfg.HTTPServer.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "pt", cfg.Classifier.Language)
	assert.Equal(t, "/default", cfg.Orchestrator.DefaultEndpoint)
	assert.Zero(t, cfg.Orchestrator.HandlerTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Provider.MockDelay)
	assert.Equal(t, 1, cfg.Provider.RetryAttempts)
	assert.Empty(t, cfg.Provider.Backends)
}

func TestLoadFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: 9090
  mode: release
cors:
  allowed_origins:
    - https://app.example.com
classifier:
  language: en
  keywords:
    image: [mockup, render]
orchestrator:
  default_endpoint: /fallback
  handler_timeout: 2s
provider:
  mock_delay: 10ms
  retry_attempts: 3
  breaker_enabled: true
  backends:
    - name: mock
      kind: text
      enabled: true
      priority: 1
`)
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "en", cfg.Classifier.Language)
	assert.Equal(t, []string{"mockup", "render"}, cfg.Classifier.Keywords.Image)
	assert.Empty(t, cfg.Classifier.Keywords.Text)
	assert.Equal(t, "/fallback", cfg.Orchestrator.DefaultEndpoint)
	assert.Equal(t, 2*time.Second, cfg.Orchestrator.HandlerTimeout)
	assert.Equal(t, 10*time.Millisecond, cfg.Provider.MockDelay)
	assert.Equal(t, 3, cfg.Provider.RetryAttempts)
	assert.True(t, cfg.Provider.BreakerEnabled)
	require.Len(t, cfg.Provider.Backends, 1)
	assert.Equal(t, config.BackendConfig{Name: "mock", Kind: "text", Enabled: true, Priority: 1}, cfg.Provider.Backends[0])
}

func TestLoadFile_CORSFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad port":             "http_server:\n  port: 70000\n",
		"relative endpoint":    "orchestrator:\n  default_endpoint: default\n",
		"negative timeout":     "orchestrator:\n  handler_timeout: -1s\n",
		"zero retries":         "provider:\n  retry_attempts: 0\n",
		"unknown backend kind": "provider:\n  backends:\n    - name: mock\n      kind: video\n      enabled: true\n      priority: 1\n",
		"duplicate priority": `provider:
  backends:
    - {name: mock, kind: text, enabled: true, priority: 1}
    - {name: other, kind: text, enabled: true, priority: 1}
`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFile(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_Example(t *testing.T) {
	cfg, err := config.LoadFile("config.example.yaml")
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.HTTPServer.Port)
	assert.Equal(t, "pt", cfg.Classifier.Language)
	require.Len(t, cfg.Provider.Backends, 1)
	assert.Equal(t, config.BackendConfig{Name: "mock", Kind: "text", Enabled: true, Priority: 1}, cfg.Provider.Backends[0])
}
