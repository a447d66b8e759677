package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cafe/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort           = "8080"
	defaultDBStatementTimeout = 5 * time.Second
	defaultRabbitMQExchange   = "cafe.orders"
)

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	DBStatementTimeout  time.Duration
	LogLevel            slog.Level
	RabbitMQURL         string
	RabbitMQExchange    string
	DailyReportSchedule string
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from a variable lookup, applying defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := envReader{getenv: getenv}

	timeout, err := env.duration("DB_STATEMENT_TIMEOUT", defaultDBStatementTimeout)
	if err != nil {
		return Config{}, err
	}
	level, err := env.logLevel("LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:            env.string("HTTP_PORT", defaultHTTPPort),
		DBHost:              env.string("DB_HOST", "localhost"),
		DBPort:              env.string("DB_PORT", "5432"),
		DBUser:              env.string("DB_USER", "postgres"),
		DBPassword:          env.string("DB_PASSWORD", ""),
		DBName:              env.string("DB_NAME", "cafe"),
		DBSslMode:           env.string("DB_SSLMODE", "disable"),
		DBStatementTimeout:  timeout,
		LogLevel:            level,
		RabbitMQURL:         env.string("RABBITMQ_URL", ""),
		RabbitMQExchange:    env.string("RABBITMQ_EXCHANGE", defaultRabbitMQExchange),
		DailyReportSchedule: env.string("DAILY_REPORT_SCHEDULE", jobs.DefaultDailyReportSchedule),
	}, nil
}

// DSN is the PostgreSQL connection string for the gorm driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

type envReader struct {
	getenv func(string) string
}

func (e envReader) string(key, fallback string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e envReader) duration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}

func (e envReader) logLevel(key string, fallback slog.Level) (slog.Level, error) {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}
