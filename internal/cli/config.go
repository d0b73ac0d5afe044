package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jmorel/prospec/internal/config"
	"github.com/jmorel/prospec/internal/letter"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	Agent      letter.Agent `yaml:"agent,omitempty"`
	Properties string       `yaml:"properties,omitempty"`
}

// configPath returns the path to the CLI config file inside the data dir.
func configPath() (string, error) {
	dir := flagDataDir
	if dir == "" {
		var err error
		dir, err = config.DefaultDataDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getAgent returns the letter-signing agent identity from env vars, the
// config file, or catalog defaults, in that order per field.
func getAgent() letter.Agent {
	env := config.FromEnv()
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	agent := cfg.Agent
	if env.AgentName != "" {
		agent.Name = env.AgentName
	}
	if env.AgentPhone != "" {
		agent.Phone = env.AgentPhone
	}
	if env.AgentEmail != "" {
		agent.Email = env.AgentEmail
	}
	return agent
}
