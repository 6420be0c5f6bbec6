package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("DefaultsWithEnvironmentOnly", func(t *testing.T) {
		cfg, err := load("", envMap(map[string]string{
			"TEAMWORK_URL": "https://example.teamwork.com",
		}))
		require.NoError(t, err)

		assert.Equal(t, DefaultHost, cfg.Host)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
		assert.Equal(t, 30*time.Second, cfg.Timeout())
		assert.Equal(t, hclog.Info, cfg.HCLogLevel())
		assert.False(t, cfg.HasAPIKey())
		assert.False(t, cfg.TracingEnabled())
	})

	t.Run("HCLFile", func(t *testing.T) {
		t.Setenv("TEST_TEAMWORK_KEY", "abc")
		path := writeFile(t, "config.hcl", `
host            = "0.0.0.0"
port            = "8080"
teamwork_url    = "https://example.teamwork.com"
api_key         = env("TEST_TEAMWORK_KEY")
request_timeout = "5s"

datadog {
  enabled = true
}
`)
		cfg, err := load(path, envMap(nil))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, "abc", cfg.APIKey)
		assert.True(t, cfg.HasAPIKey())
		assert.Equal(t, 5*time.Second, cfg.Timeout())
		require.NotNil(t, cfg.Datadog)
		assert.True(t, cfg.TracingEnabled())
		assert.Equal(t, DefaultServiceName, cfg.Datadog.Service)
	})

	t.Run("YAMLFile", func(t *testing.T) {
		path := writeFile(t, "config.yaml", `
port: "9000"
teamwork_url: https://example.teamwork.com
log_level: debug
`)
		cfg, err := load(path, envMap(nil))
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, hclog.Debug, cfg.HCLogLevel())
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		path := writeFile(t, "config.hcl", `
port         = "8080"
teamwork_url = "https://file.teamwork.com"
`)
		cfg, err := load(path, envMap(map[string]string{
			"PORT":         "8081",
			"TEAMWORK_URL": "https://env.teamwork.com",
			"LOG_JSON":     "true",
		}))
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.Port)
		assert.Equal(t, "https://env.teamwork.com", cfg.TeamworkURL)
		assert.True(t, cfg.LogJSON)
	})

	t.Run("MissingTeamworkURL", func(t *testing.T) {
		_, err := load("", envMap(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TeamworkURL")
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := load("", envMap(map[string]string{
			"TEAMWORK_URL":    "ftp://example.com",
			"PORT":            "http",
			"REQUEST_TIMEOUT": "-1s",
			"LOG_LEVEL":       "loud",
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TeamworkURL")
		assert.Contains(t, err.Error(), "Port")
		assert.Contains(t, err.Error(), "RequestTimeout")
		assert.Contains(t, err.Error(), "LogLevel")
	})

	t.Run("UnknownHCLAttribute", func(t *testing.T) {
		path := writeFile(t, "config.hcl", `
teamwork_url = "https://example.teamwork.com"
cache        = true
`)
		_, err := load(path, envMap(nil))
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := load(filepath.Join(t.TempDir(), "nope.hcl"), envMap(nil))
		require.Error(t, err)
	})
}
