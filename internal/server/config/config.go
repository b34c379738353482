// Package config loads the server configuration.
// Sources, from lowest to highest priority: defaults, .env file,
// TASKPLANNER_* environment variables, command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы БД
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Форматы логов
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const envPrefix = "TASKPLANNER_"

// Config конфигурация сервера
type Config struct {
	Location          *time.Location // разрешенный TimeZone, заполняется в Validate
	Address           string
	DatabaseDriver    string
	DatabaseDSN       string
	JWTSecret         string
	TimeZone          string
	LogLevel          string
	LogFormat         string
	TokenTTL          time.Duration
	RateLimitWindow   time.Duration
	ShutdownTimeout   time.Duration
	RateLimitRequests int
	AuthRateLimit     int
	SingleUser        bool
	ShowVersion       bool
}

// Load собирает конфигурацию и проверяет ее.
// args - аргументы командной строки без имени программы.
func Load(args []string) (*Config, error) {
	// .env нужен только для локальной разработки, его отсутствие не ошибка
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := fromEnv()

	fs := flag.NewFlagSet("taskplanner-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "addr", cfg.Address, "HTTP listen address")
	fs.StringVar(&cfg.DatabaseDriver, "db-driver", cfg.DatabaseDriver, "database driver: sqlite or postgres")
	fs.StringVar(&cfg.DatabaseDSN, "db", cfg.DatabaseDSN, "SQLite file path or PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "secret used to sign tokens")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "token lifetime")
	fs.BoolVar(&cfg.SingleUser, "single-user", cfg.SingleUser, "serve task routes without authentication")
	fs.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "time zone for day boundaries and zone-less timestamps")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.IntVar(&cfg.RateLimitRequests, "rate-limit", cfg.RateLimitRequests, "requests per window per IP")
	fs.IntVar(&cfg.AuthRateLimit, "auth-rate-limit", cfg.AuthRateLimit, "login/register requests per window per IP")
	fs.DurationVar(&cfg.RateLimitWindow, "rate-window", cfg.RateLimitWindow, "rate limit window")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromEnv() *Config {
	return &Config{
		Address:           getEnv("ADDRESS", ":8080"),
		DatabaseDriver:    getEnv("DB_DRIVER", DriverSQLite),
		DatabaseDSN:       getEnv("DB_DSN", "taskplanner.db"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		SingleUser:        getEnvAsBool("SINGLE_USER", false),
		TimeZone:          getEnv("TIMEZONE", "Local"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", LogFormatText),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		AuthRateLimit:     getEnvAsInt("AUTH_RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate проверяет значения и разрешает часовой пояс
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt secret is required (TASKPLANNER_JWT_SECRET or -jwt-secret)")
	}

	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver %q", c.DatabaseDriver)
	}

	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.RateLimitRequests <= 0 || c.AuthRateLimit <= 0 || c.RateLimitWindow <= 0 {
		return errors.New("rate limits and window must be positive")
	}

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	c.Location = loc

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

// SlogLevel переводит LogLevel в slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(envPrefix + key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
