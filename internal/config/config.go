package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings.
type Config struct {
	App     AppConfig     `envPrefix:"TIMESTAMP_"`
	HTTP    HTTPConfig    `envPrefix:"TIMESTAMP_HTTP_"`
	Metrics MetricsConfig `envPrefix:"TIMESTAMP_METRICS_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"production"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"timestamp-service"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	Port               int           `env:"PORT" envDefault:"8080"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Addr returns the listen address of the public server.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Addr    string `env:"ADDR" envDefault:"127.0.0.1:9090"`
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that env parsing cannot.
func (c *Config) Validate() error {
	if c.HTTP.Host == "" {
		return fmt.Errorf("TIMESTAMP_HTTP_HOST must not be empty")
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("TIMESTAMP_HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Metrics.Enabled {
		if c.Metrics.Addr == "" {
			return fmt.Errorf("TIMESTAMP_METRICS_ADDR is required when metrics are enabled")
		}
		if c.Metrics.Addr == c.HTTP.Addr() {
			return fmt.Errorf("TIMESTAMP_METRICS_ADDR must differ from the public listen address %s", c.HTTP.Addr())
		}
	}
	return nil
}
