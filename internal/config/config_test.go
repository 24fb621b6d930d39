package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "0.0.0.0:9000"
  mode: serial
  workers: 8
  rate_limit: 20
  rate_period: 2s
  read_timeout: 3s
resources:
  dir: /srv/pages
  sleep_delay: 1500ms
  cache_ttl: 5m
admin:
  address: ":6061"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Address)
	assert.Equal(t, ModeSerial, cfg.Server.Mode)
	assert.Equal(t, 8, cfg.Server.Workers)
	assert.Equal(t, int64(20), cfg.Server.RateLimit)
	assert.Equal(t, 2*time.Second, cfg.Server.RatePeriod)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/srv/pages", cfg.Resources.Dir)
	assert.Equal(t, 1500*time.Millisecond, cfg.Resources.SleepDelay)
	assert.Equal(t, 5*time.Minute, cfg.Resources.CacheTTL)
	assert.Equal(t, ":6061", cfg.Admin.Address)

	// untouched keys keep their defaults
	assert.Equal(t, 16, cfg.Resources.CacheSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  workers: 2\n")
	t.Setenv("DISPATCHER_WORKERS", "12")
	t.Setenv("DISPATCHER_MODE", "serial")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Server.Workers)
	assert.Equal(t, ModeSerial, cfg.Server.Mode)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read yaml")
	})

	t.Run("BrokenYAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("BadEnv", func(t *testing.T) {
		t.Setenv("DISPATCHER_WORKERS", "many")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "Defaults", mutate: func(*Config) {}},
		{
			name:    "UnknownMode",
			mutate:  func(c *Config) { c.Server.Mode = "threaded" },
			wantErr: "server.mode",
		},
		{
			name:    "ZeroWorkers",
			mutate:  func(c *Config) { c.Server.Workers = 0 },
			wantErr: "server.workers must be positive",
		},
		{
			name: "ZeroWorkersSerial",
			mutate: func(c *Config) {
				c.Server.Mode = ModeSerial
				c.Server.Workers = 0
			},
		},
		{
			name:    "EmptyAddress",
			mutate:  func(c *Config) { c.Server.Address = "" },
			wantErr: "server.address",
		},
		{
			name: "RateLimitWithoutPeriod",
			mutate: func(c *Config) {
				c.Server.RateLimit = 5
				c.Server.RatePeriod = 0
			},
			wantErr: "server.rate_period",
		},
		{
			name:    "NegativeReadTimeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantErr: "server.read_timeout",
		},
		{
			name:    "EmptyResourcesDir",
			mutate:  func(c *Config) { c.Resources.Dir = "" },
			wantErr: "resources.dir",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
