package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from the environment. It is
// built once in main and passed down; handlers and middleware never touch
// os.Getenv themselves.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir     string
	MaxUploadSize int64

	// Path to a Firebase service-account JSON file. Empty disables push.
	FirebaseCredentials string

	LogLevel string

	// Per-IP rate limit (requests per second) and burst.
	RateLimit float64
	RateBurst int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		DatabaseDSN:         os.Getenv("DATABASE_DSN"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTL:            time.Hour,
		UploadDir:           getEnvOrDefault("UPLOAD_DIR", "uploads"),
		MaxUploadSize:       10 << 20,
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		RateLimit:           5,
		RateBurst:           10,
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit = f
		}
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		if b, err := strconv.Atoi(v); err == nil && b > 0 {
			cfg.RateBurst = b
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
