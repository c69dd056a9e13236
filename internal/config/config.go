package config

import (
	"fmt"
	"log/slog"
	"os"
)

// Config represents runtime configuration derived from environment variables.
// Connection parameters are still confirmed interactively; the values here
// only pre-fill the prompts.
type Config struct {
	Logging  LoggingConfig
	Database DatabaseEnv
	Supabase SupabaseEnv
}

// LoggingConfig represents structured logging configuration.
type LoggingConfig struct {
	Level  slog.Level
	Format string
}

// DatabaseEnv holds prompt defaults for a direct PostgreSQL connection.
type DatabaseEnv struct {
	URL      string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// SupabaseEnv holds prompt defaults for the REST-based variant.
type SupabaseEnv struct {
	URL            string
	ServiceRoleKey string
}

const defaultLogFormat = "text"

// Load reads configuration from environment variables, applying defaults when
// values are not provided or invalid.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  slog.LevelInfo,
			Format: defaultLogFormat,
		},
		Database: DatabaseEnv{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			Database: os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Supabase: SupabaseEnv{
			URL:            os.Getenv("SUPABASE_URL"),
			ServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		},
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := parseLogLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.Logging.Level = level
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		switch v {
		case "json", "text":
			cfg.Logging.Format = v
		default:
			return Config{}, fmt.Errorf("invalid LOG_FORMAT: must be 'json' or 'text'")
		}
	}

	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch raw {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("must be one of debug, info, warn, error")
	}
}
