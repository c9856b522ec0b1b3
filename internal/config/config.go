// Package config provides configuration loading and validation for the
// recruitment platform server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig holds the server configuration read from the environment.
type AppConfig struct {
	Port           int
	DatabaseURL    string
	GeminiAPIKey   string
	AllowedOrigins []string
}

// NewAppConfig builds the application configuration from environment
// variables. DATABASE_URL is required; GEMINI_API_KEY is optional (AI
// analysis endpoints return an error when unset).
func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:         8080,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}
