// Package config holds application configuration read from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	DataDir    string // directory for the prospec database
	DevMode    bool
	AgentName  string
	AgentPhone string
	AgentEmail string
}

// FromEnv creates a Config from environment variables.
func FromEnv() Config {
	return Config{
		DataDir:    os.Getenv("PROSPEC_DATA_DIR"),
		DevMode:    os.Getenv("PROSPEC_DEV_MODE") == "true",
		AgentName:  os.Getenv("PROSPEC_AGENT_NAME"),
		AgentPhone: os.Getenv("PROSPEC_AGENT_PHONE"),
		AgentEmail: os.Getenv("PROSPEC_AGENT_EMAIL"),
	}
}

// DefaultDataDir returns the default data directory: ~/.config/prospec
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "prospec"), nil
}

// DatabasePath resolves the path of the prospec database inside the data dir.
func (c Config) DatabasePath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		var err error
		dir, err = DefaultDataDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "prospec.db"), nil
}
