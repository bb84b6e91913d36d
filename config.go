package main

import (
	"os"
	"strings"
)

// Config holds all environment variables for the pricing-service.
type Config struct {
	Port           string   // Service port (default: 8080)
	Env            string   // "development" or "production"
	RedisURL       string   // Optional; empty disables the catalog cache
	AllowedOrigins []string // CORS allowlist
}

// LoadConfig loads environment variables into Config struct. MySQL settings
// are read by the database package.
func LoadConfig() *Config {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("APP_ENV", "development"),
		RedisURL: os.Getenv("REDIS_URL"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
