package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config carries driver settings from the environment. The simulation core
// takes no configuration of its own; every game number is a caller-supplied
// parameter.
type Config struct {
	Environment string
	LogLevel    slog.Level
	Ticks       int    // Ticks to run in headless mode
	DataDir     string // Directory holding world-definition files
	RedisURL    string // Optional; enables the event journal when set
}

func Load() (*Config, error) {
	ticks, err := strconv.Atoi(getEnv("TICKS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid TICKS value: %w", err)
	}

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Ticks:       ticks,
		DataDir:     getEnv("DATA_DIR", "./data"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
