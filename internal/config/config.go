package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultHTTPAddr   = ":8090"
	defaultDBPath     = "/data/remotectl.db"
	defaultLayoutPath = "/data/layout.json"
	defaultSlotCount  = 7
)

// Config stores runtime settings loaded from environment variables.
type Config struct {
	HTTPAddr   string
	DBPath     string
	LayoutPath string
	SlotCount  int
	LogLevel   slog.Level
}

// Load builds Config from environment variables using stable defaults.
func Load() Config {
	return Config{
		HTTPAddr:   getenv("HTTP_ADDR", defaultHTTPAddr),
		DBPath:     getenv("DB_PATH", defaultDBPath),
		LayoutPath: getenv("LAYOUT_PATH", defaultLayoutPath),
		SlotCount:  parseInt("SLOT_COUNT", defaultSlotCount),
		LogLevel:   parseLogLevel(getenv("LOG_LEVEL", "info")),
	}
}

// DBDir returns the target directory for DBPath.
func (c Config) DBDir() string {
	return filepath.Dir(c.DBPath)
}

func getenv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func parseInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
