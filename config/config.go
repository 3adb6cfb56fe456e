package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the storefront's runtime settings.
type AppConfig struct {
	Port          string
	Environment   string
	CORSOrigins   []string
	CacheTTL      time.Duration
	CategoryMode  string
	RateLimit     int
	RateWindow    time.Duration
	RecentWindow  time.Duration
	DefaultLimit  int
	MaxLimit      int
	EnableSwagger bool
}

// Load reads .env (when present) and the process environment.
func Load() *AppConfig {
	_ = godotenv.Load()

	return &AppConfig{
		Port:          getEnv("PORT", "8081"),
		Environment:   getEnv("APP_ENV", "development"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		CacheTTL:      getDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		CategoryMode:  getEnv("CATEGORY_FILTER_MODE", "union"),
		RateLimit:     getInt("RATE_LIMIT_PER_MINUTE", 300),
		RateWindow:    time.Minute,
		RecentWindow:  getDuration("RECENT_WINDOW", 7*24*time.Hour),
		DefaultLimit:  getInt("PAGE_LIMIT_DEFAULT", 12),
		MaxLimit:      getInt("PAGE_LIMIT_MAX", 100),
		EnableSwagger: getEnv("ENABLE_SWAGGER", "true") == "true",
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
