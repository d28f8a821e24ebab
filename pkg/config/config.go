package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "3000"
	defaultEngineTimeout = 30 * time.Second
	defaultMockDelay     = 4500 * time.Millisecond
)

// Config holds the full server configuration
type Config struct {
	Port          string
	CoreEngineURL string        // empty selects mock mode
	EngineTimeout time.Duration // hard bound on the downstream call
	MockDelay     time.Duration // simulated latency of the mock fallback
	LogLevel      slog.Level
}

// Load reads configuration from the environment, loading a .env file
// first if one exists.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", defaultPort),
		CoreEngineURL: os.Getenv("CORE_ENGINE_URL"),
		EngineTimeout: getDurationMs("CORE_ENGINE_TIMEOUT_MS", defaultEngineTimeout),
		MockDelay:     getDurationMs("MOCK_DELAY_MS", defaultMockDelay),
		LogLevel:      getLogLevel(),
	}
}

// MockMode reports whether no downstream engine is configured.
func (c *Config) MockMode() bool {
	return c.CoreEngineURL == ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationMs(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

func getLogLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
