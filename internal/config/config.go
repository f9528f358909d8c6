package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Avellano30/spa-management-client/internal/util"
)

// Config centralises all environment and runtime configuration.
type Config struct {
	Logger *log.Logger

	// Base URL of the spa booking API.
	APIBaseURL string

	// Static key sent on the auth endpoints.
	APIKey string

	// Path of the local SQLite database holding client-side state
	// (session token, terms acknowledgment).
	StateDBPath string

	HTTPTimeout time.Duration

	SignInPath string
}

// Load builds the Config struct, validating critical env vars.
func Load() *Config {
	logger := util.NewLogger()
	logger.Println("Loading environment configuration...")

	cfg := &Config{
		Logger:      logger,
		APIBaseURL:  strings.TrimRight(getEnvOrDefault("SPA_API_URL", "http://localhost:3000"), "/"),
		APIKey:      os.Getenv("SPA_API_KEY"),
		StateDBPath: getEnvOrDefault("CLIENT_STATE_DB", "data/client_state.db"),
		HTTPTimeout: getDurationOrDefault(logger, "HTTP_TIMEOUT", 25*time.Second),
		SignInPath:  getEnvOrDefault("SIGN_IN_PATH", "/sign-in"),
	}

	logger.Printf("✅ Loaded config (API: %s)", cfg.APIBaseURL)
	return cfg
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getDurationOrDefault(logger *log.Logger, key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Printf("⚠️  Invalid %s %q, using default %s", key, raw, def)
		return def
	}
	return d
}
