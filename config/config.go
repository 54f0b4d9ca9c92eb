package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the server settings.
type Config struct {
	Addr              string        // listen address
	RedisAddr         string        // empty disables Redis
	CacheTTL          time.Duration // lifetime of cached results
	CacheMaxEntries   int           // in-memory cache only
	RateLimitCapacity int           // requests per client per window
	RateLimitWindow   time.Duration
	HistoryLimit      int // calculations kept in memory
	LogLevel          logrus.Level
}

// LoadConfig reads settings from the environment, after loading a .env file
// when one exists.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found")
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:              getEnv("FINCALC_ADDR", ":8080"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		CacheTTL:          getDuration(logger, "CACHE_TTL", time.Hour),
		CacheMaxEntries:   getInt(logger, "CACHE_MAX_ENTRIES", 10000),
		RateLimitCapacity: getInt(logger, "RATE_LIMIT_CAPACITY", 60),
		RateLimitWindow:   getDuration(logger, "RATE_LIMIT_WINDOW", time.Minute),
		HistoryLimit:      getInt(logger, "HISTORY_LIMIT", 500),
		LogLevel:          level,
	}, nil
}

// getEnv returns the variable's value or the default when unset
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(logger *logrus.Logger, key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logger.WithField("key", key).Warnf("invalid duration %q, using %s", raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(logger *logrus.Logger, key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.WithField("key", key).Warnf("invalid value %q, using %d", raw, defaultValue)
		return defaultValue
	}
	return n
}
