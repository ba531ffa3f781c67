package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultBackendURL is used when no backend override is configured
const DefaultBackendURL = "http://localhost:8000"

type Config struct {
	ServerPort          string
	BackendURL          string
	LogLevel            string
	LogFormat           string
	FetchTimeoutSeconds string
	MetricsSummaryMins  string
}

// ResolveBackendURL returns the override when it is set, otherwise the local default.
// The value is not validated; a malformed URL surfaces later as a failed fetch.
func ResolveBackendURL(override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	return DefaultBackendURL
}

// GetFetchTimeout returns the per-resource fetch timeout
func (c *Config) GetFetchTimeout() time.Duration {
	return parseDuration("FETCH_TIMEOUT_SECONDS", c.FetchTimeoutSeconds, time.Second, 10*time.Second)
}

// GetMetricsSummaryInterval returns how often loader metrics are logged; zero disables the job
func (c *Config) GetMetricsSummaryInterval() time.Duration {
	return parseDuration("METRICS_SUMMARY_MINUTES", c.MetricsSummaryMins, time.Minute, 15*time.Minute)
}

func parseDuration(key, raw string, unit, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		logrus.Warnf("Invalid %s value: %s, using default %v", key, raw, fallback)
		return fallback
	}

	return time.Duration(value) * unit
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	backendOverride := getEnv("BACKEND_URL", "")
	if backendOverride == "" {
		backendOverride = getEnv("VITE_BACKEND_URL", "")
	}

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		BackendURL:          ResolveBackendURL(backendOverride),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		FetchTimeoutSeconds: getEnv("FETCH_TIMEOUT_SECONDS", "10"),
		MetricsSummaryMins:  getEnv("METRICS_SUMMARY_MINUTES", "15"),
	}
}

// ConfigureLogging applies the configured level and format to the global logrus logger
func (c *Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL value: %s, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
