package config

import (
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	KVURL          string
	RedisPassword  string
	BookingURL     string
	BookingAPIKey  string
	BookingTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		KVURL:          getEnv("KV_URL", "redis://localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		BookingURL:     getEnv("BOOKING_URL", ""),
		BookingAPIKey:  getEnv("BOOKING_API_KEY", ""),
		BookingTimeout: getEnvAsDuration("BOOKING_TIMEOUT", 10*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
