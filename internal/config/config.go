// Package config loads the service configuration from the environment,
// optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
	Thread   ThreadConfig
}

type ServerConfig struct {
	Address         string        `env:"SERVER_ADDRESS" env-default:":9090"`
	ContextTimeout  time.Duration `env:"CONTEXT_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig describes one mysql or postgres server.
// Port falls back to the driver's usual port when empty.
type DatabaseConfig struct {
	Driver        string        `env:"DATABASE_DRIVER" env-default:"mysql"`
	Host          string        `env:"DATABASE_HOST" env-default:"localhost"`
	Port          string        `env:"DATABASE_PORT"`
	User          string        `env:"DATABASE_USER" env-default:"forumapi"`
	Pass          string        `env:"DATABASE_PASS"`
	Name          string        `env:"DATABASE_NAME" env-default:"forumapi"`
	Timezone      string        `env:"DATABASE_TIMEZONE" env-default:"UTC"`
	SSLMode       string        `env:"DATABASE_SSLMODE" env-default:"disable"`
	MaxRetry      int           `env:"DATABASE_MAX_RETRY" env-default:"10"`
	RetryInterval time.Duration `env:"DATABASE_RETRY_INTERVAL" env-default:"2s"`
	AutoMigrate   bool          `env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

// DefaultPort returns Port, or the well-known port of Driver.
func (d DatabaseConfig) DefaultPort() string {
	if d.Port != "" {
		return d.Port
	}
	if d.Driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

type AuthConfig struct {
	// AccessTokenKey is the HS256 secret shared with the authentication service
	AccessTokenKey string `env:"ACCESS_TOKEN_KEY" env-required:"true"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type ThreadConfig struct {
	FanoutLimit int `env:"THREAD_FANOUT_LIMIT" env-default:"8"`
}

// Load reads .env if present, then the environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Auth.AccessTokenKey == "" {
		return fmt.Errorf("ACCESS_TOKEN_KEY is required")
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	if c.Database.MaxRetry < 1 {
		return fmt.Errorf("DATABASE_MAX_RETRY must be > 0")
	}

	if _, err := time.LoadLocation(c.Database.Timezone); err != nil {
		return fmt.Errorf("invalid DATABASE_TIMEZONE: %w", err)
	}

	if c.Server.ContextTimeout <= 0 {
		return fmt.Errorf("CONTEXT_TIMEOUT must be > 0")
	}

	if c.Thread.FanoutLimit < 1 {
		return fmt.Errorf("THREAD_FANOUT_LIMIT must be > 0")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json")
	}

	return nil
}

// Configure applies level and formatter to l.
func (c LogConfig) Configure(l *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	l.SetLevel(level)

	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
