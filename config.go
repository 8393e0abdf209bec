package sqltutor

import (
	"fmt"
	"os"
)

const (
	defaultPort  = "8502"
	defaultModel = "llama3.2:3b"
)

// Config holds the configuration for the tutor service.
// All fields can be populated from environment variables using GetEnvironmentConfig().
type Config struct {
	Addr        string // HTTP listen address (e.g. ":8502")
	ManualPath  string // Path to the SQL manual document to index
	Database    string // SQLite database path for the chunk index (default: "sqltutor.db")
	GenerateURL string // Ollama/Open WebUI generate endpoint URL
	Token       string // API token for the generate endpoint
	Model       string // Model used for answer generation
	Debug       bool   // Enable debug logging
}

// GetEnvironmentConfig creates a Config from environment variables.
func GetEnvironmentConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return Config{
		Addr:        ":" + port,
		ManualPath:  envOr("SQLTUTOR_MANUAL", "SQL-Manual.md"),
		Database:    envOr("SQLTUTOR_DB", "sqltutor.db"),
		GenerateURL: os.Getenv("OPEN_WEB_API_GENERATE_URL"),
		Token:       os.Getenv("OPEN_WEB_API_TOKEN"),
		Model:       envOr("SQLTUTOR_MODEL", defaultModel),
		Debug:       os.Getenv("SQLTUTOR_DEBUG") == "true",
	}
}

// Validate checks that required fields are set.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("sqltutor: listen address is required")
	}
	if c.ManualPath == "" {
		return fmt.Errorf("sqltutor: manual path is required")
	}
	if c.GenerateURL == "" {
		return fmt.Errorf("sqltutor: generate endpoint URL is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
