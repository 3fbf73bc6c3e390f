package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DataPath      string
	DataURL       string
	DefaultPeriod int
	HTTPTimeout   time.Duration
	LogLevel      slog.Level
}

func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		Port:          envOr("PORT", "5000"),
		DataPath:      envOr("DATA_PATH", "./data/mediacontribution.csv"),
		DataURL:       os.Getenv("DATA_URL"),
		DefaultPeriod: envOrInt("DEFAULT_PERIOD_WEEKS", 12),
		HTTPTimeout:   to,
		LogLevel:      lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envOrInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v < 1 {
		return def
	}
	return v
}
