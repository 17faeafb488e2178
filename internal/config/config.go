// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"skatetrack/internal/remote"
)

// Config holds everything the CLI needs to wire itself up.
type Config struct {
	// Store selects the document backend: "sqlite" or "redis".
	Store string

	// RedisURL is the redis connection string for the redis backend.
	RedisURL string

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string

	// UID identifies the signed-in user. An empty UID means signed out.
	UID         string
	DisplayName string
	Email       string

	// TimeZone is the calendar time zone, IANA name.
	TimeZone string

	// GoogleToken is an OAuth access token for calendar publishing.
	GoogleToken string
}

// Load builds a Config from environment variables.
func Load() Config {
	sqlitePath := os.Getenv("SKATETRACK_DB")
	if sqlitePath == "" {
		sqlitePath, _ = remote.DefaultSQLitePath()
	}

	return Config{
		Store:       getenv("SKATETRACK_STORE", "sqlite"),
		RedisURL:    getenv("SKATETRACK_REDIS_URL", "redis://localhost:6379/0"),
		SQLitePath:  sqlitePath,
		UID:         getenv("SKATETRACK_UID", "local"),
		DisplayName: getenv("SKATETRACK_NAME", ""),
		Email:       getenv("SKATETRACK_EMAIL", ""),
		TimeZone:    getenv("SKATETRACK_TIMEZONE", "America/Sao_Paulo"),
		GoogleToken: getenv("SKATETRACK_GOOGLE_TOKEN", ""),
	}
}

// Validate checks the backend selection.
func (c Config) Validate() error {
	switch c.Store {
	case "sqlite", "redis":
		return nil
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store)
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
