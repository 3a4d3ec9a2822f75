package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Lock     LockConfig
	LogLevel string
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr            string
	SessionLifetime time.Duration
	SessionCookie   string
	CookieSecure    bool
}

// StoreConfig contains the settings for the on-device key-value store.
// Path selects the SQLite database file; DatabaseURL, when set, switches the
// store to Postgres instead. UseMock runs against a seeded in-memory store.
type StoreConfig struct {
	Path        string
	DatabaseURL string
	UseMock     bool
}

// LockConfig holds the optional passcode protecting the app's screens.
// An empty passcode disables the lock entirely.
type LockConfig struct {
	Passcode string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
		SessionCookie: firstNonEmpty(
			os.Getenv("SESSION_COOKIE"),
			"cookbook_session",
		),
		CookieSecure: boolEnv("SESSION_COOKIE_SECURE"),
	}

	if lifetime := strings.TrimSpace(os.Getenv("SESSION_LIFETIME")); lifetime != "" {
		parsed, err := time.ParseDuration(lifetime)
		if err != nil {
			return Config{}, fmt.Errorf("parse SESSION_LIFETIME: %w", err)
		}
		cfg.Server.SessionLifetime = parsed
	}

	cfg.Store = StoreConfig{
		Path: firstNonEmpty(
			os.Getenv("STORE_PATH"),
			"cookbook.db",
		),
		DatabaseURL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		UseMock: boolEnv("USE_MOCK_DB"),
	}

	cfg.Lock = LockConfig{
		Passcode: os.Getenv("APP_PASSCODE"),
	}

	cfg.LogLevel = strings.TrimSpace(os.Getenv("LOG_LEVEL"))

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func boolEnv(key string) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
