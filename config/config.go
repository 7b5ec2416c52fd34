// Package config loads server process configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server process
type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port string
}

// LLMConfig holds provider defaults; the API key itself is read by the
// llm package from LLM_API_KEY when the client is constructed
type LLMConfig struct {
	Provider   string
	Model      string
	MaxTokens  int
	APITimeout int
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	TTLMinutes int
}

// Load loads configuration from environment variables, reading a .env
// file first when one is present
func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		LLM: LLMConfig{
			Provider:   getEnv("LLM_PROVIDER", "openai"),
			Model:      getEnv("LLM_MODEL", "gpt-3.5-turbo"),
			MaxTokens:  getEnvAsInt("LLM_MAX_TOKENS", 4000),
			APITimeout: getEnvAsInt("LLM_API_TIMEOUT", 60),
		},
		Session: SessionConfig{
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
	}
}

// Addr returns the host:port pair the server listens on
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
