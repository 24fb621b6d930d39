package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	ModePooled = "pooled"
	ModeSerial = "serial"
)

type Config struct {
	Server struct {
		Address     string        `yaml:"address" env:"DISPATCHER_ADDRESS"`
		Mode        string        `yaml:"mode" env:"DISPATCHER_MODE"`
		Workers     int           `yaml:"workers" env:"DISPATCHER_WORKERS"`
		RateLimit   int64         `yaml:"rate_limit" env:"DISPATCHER_RATE_LIMIT"`
		RatePeriod  time.Duration `yaml:"rate_period"`
		ReadTimeout time.Duration `yaml:"read_timeout"`
	} `yaml:"server"`

	Resources struct {
		Dir             string        `yaml:"dir" env:"DISPATCHER_RESOURCES_DIR"`
		SleepDelay      time.Duration `yaml:"sleep_delay"`
		CacheSize       int           `yaml:"cache_size"`
		CacheTTL        time.Duration `yaml:"cache_ttl"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
	} `yaml:"resources"`

	Admin struct {
		Address string `yaml:"address" env:"DISPATCHER_ADMIN_ADDRESS"`
	} `yaml:"admin"`

	Tracing struct {
		Enabled  bool   `yaml:"enabled" env:"TRACING_ENABLED"`
		Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	} `yaml:"tracing"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func Default() *Config {
	var cfg Config
	cfg.Server.Address = "127.0.0.1:7878"
	cfg.Server.Mode = ModePooled
	cfg.Server.Workers = 4
	cfg.Server.RatePeriod = time.Second
	cfg.Server.ReadTimeout = 10 * time.Second
	cfg.Resources.Dir = "resources"
	cfg.Resources.SleepDelay = 5 * time.Second
	cfg.Resources.CacheSize = 16
	cfg.Resources.CacheTTL = time.Minute
	cfg.Resources.CleanupInterval = 30 * time.Second
	cfg.Admin.Address = "127.0.0.1:6060"
	cfg.Tracing.Endpoint = "localhost:4318"
	cfg.ShutdownTimeout = 10 * time.Second
	return &cfg
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read yaml")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Server.Mode {
	case ModePooled, ModeSerial:
	default:
		return fmt.Errorf("server.mode must be %q or %q, got %q", ModePooled, ModeSerial, c.Server.Mode)
	}

	if c.Server.Mode == ModePooled && c.Server.Workers <= 0 {
		return fmt.Errorf("server.workers must be positive, got %d", c.Server.Workers)
	}
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	if c.Server.RateLimit < 0 {
		return errors.New("server.rate_limit must be non-negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RatePeriod <= 0 {
		return errors.New("server.rate_period must be positive when rate_limit is set")
	}
	if c.Server.ReadTimeout < 0 {
		return errors.New("server.read_timeout must be non-negative")
	}
	if c.Resources.Dir == "" {
		return errors.New("resources.dir is required")
	}
	if c.Resources.SleepDelay < 0 {
		return errors.New("resources.sleep_delay must be non-negative")
	}
	return nil
}
