package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client and the local dev server.
type Config struct {
	// API client configuration
	APIBaseURL     string
	RequestTimeout time.Duration
	PageSize       int
	SessionFile    string

	// Dev server configuration
	ServerHost string
	ServerPort string
	DBPath     string
	JWTSecret  string
}

// Load creates a Config from environment variables, falling back to
// development defaults. A .env file in the working directory is honored when
// present.
func Load() (*Config, error) {
	// .env is optional; missing files are not an error
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:     getEnv("RECIPENEST_API_URL", "http://localhost:9000/api/rest/"),
		RequestTimeout: 15 * time.Second,
		PageSize:       10,
		SessionFile:    os.Getenv("RECIPENEST_SESSION_FILE"),
		ServerHost:     getEnv("SERVER_HOST", "localhost"),
		ServerPort:     getEnv("SERVER_PORT", "9000"),
		DBPath:         getEnv("DB_PATH", "recipenest.db"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
	}

	if v := os.Getenv("RECIPENEST_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid RECIPENEST_TIMEOUT_SECONDS: %q", v)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("RECIPENEST_PAGE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid RECIPENEST_PAGE_SIZE: %q", v)
		}
		cfg.PageSize = size
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.SessionFile = filepath.Join(dir, "recipenest", "session.json")
	}

	if IsProduction() && cfg.JWTSecret == "dev-secret" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
