package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort        string
	DBPath         string
	WorkspacePath  string
	LogLevel       slog.Level
	LogFormat      string
	RepairJSON     bool
	ConvertHTML    bool
	MaxImportBytes int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and rejects values it cannot parse.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:       getEnv("API_PORT", "9000"),
		DBPath:        getEnv("DB_PATH", "./data/markdown-json-editor.db"),
		WorkspacePath: getEnv("WORKSPACE_PATH", "."),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	port, err := strconv.Atoi(cfg.APIPort)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be a port number, got %q", cfg.APIPort)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.RepairJSON, err = getBool("IMPORT_REPAIR_JSON", true); err != nil {
		return nil, err
	}
	if cfg.ConvertHTML, err = getBool("IMPORT_CONVERT_HTML", false); err != nil {
		return nil, err
	}

	maxBytes := getEnv("MAX_IMPORT_BYTES", "10485760")
	cfg.MaxImportBytes, err = strconv.Atoi(maxBytes)
	if err != nil {
		return nil, fmt.Errorf("MAX_IMPORT_BYTES must be a valid integer: %w", err)
	}
	if cfg.MaxImportBytes <= 0 {
		return nil, fmt.Errorf("MAX_IMPORT_BYTES must be greater than 0")
	}

	workspace, err := filepath.Abs(cfg.WorkspacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve WORKSPACE_PATH: %w", err)
	}
	cfg.WorkspacePath = workspace

	// Create the data directory for the database file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
