package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/flagx"
)

// Environment keys recognized by the client.
const (
	envBaseURL             = "HMS_API_URL"
	envDatabasePath        = "HMS_DB_PATH"
	envRequestTimeout      = "HMS_REQUEST_TIMEOUT"
	envOnlineCheckInterval = "HMS_ONLINE_CHECK_INTERVAL"
	envLogLevel            = "HMS_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the process environment. An env
// file named via -c/-config (or ".env" in the working directory, if present)
// is loaded first; real environment variables win over file entries, which
// is godotenv's default.
func parseEnv(cfg *Config) {
	if file := flagx.EnvFileFlags(); file != "" {
		_ = godotenv.Load(file)
	} else {
		_ = godotenv.Load()
	}

	cfg.BaseURL = getEnvString(envBaseURL, cfg.BaseURL)
	cfg.DatabasePath = getEnvString(envDatabasePath, cfg.DatabasePath)
	cfg.RequestTimeout = getEnvSeconds(envRequestTimeout, cfg.RequestTimeout)
	cfg.OnlineCheckInterval = getEnvSeconds(envOnlineCheckInterval, cfg.OnlineCheckInterval)
	cfg.LogLevel = getEnvString(envLogLevel, cfg.LogLevel)
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvSeconds reads an integer number of seconds. Unparseable values keep
// the fallback.
func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
