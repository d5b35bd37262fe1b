// Package config reads the app configuration from environment variables.
package config

import "os"

// DefaultAddr is the default listen address.
const DefaultAddr = "127.0.0.1:8080"

// Config holds the runtime configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DatabaseURL selects the PostgreSQL store when set; the in-memory
	// store is used otherwise.
	DatabaseURL string
	// OpenAIKey enables live Sigi replies; without it the chat serves
	// canned fallbacks.
	OpenAIKey string
	// ObjectDir is the root directory for uploaded catch photos.
	ObjectDir string
}

// Load reads the configuration. Every key is optional; missing credentials
// degrade the related collaborator to its fallback behavior.
func Load() Config {
	cfg := Config{
		Addr:        os.Getenv("ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		ObjectDir:   os.Getenv("OBJECT_DIR"),
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ObjectDir == "" {
		cfg.ObjectDir = "objects"
	}
	return cfg
}
