package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// AIModel is the generative model used for Enchant and the Oracle.
	AIModel string `json:"aiModel"`

	// RecorderCommand captures a voice note. "{output}" is replaced with
	// the temporary file the recording should be written to.
	RecorderCommand []string `json:"recorderCommand"`

	// SweepExcludeDomains lists domains where 404s are treated as possibly
	// private rather than dead during a link sweep.
	SweepExcludeDomains []string `json:"sweepExcludeDomains"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AIModel: "gemini-2.0-flash",
		RecorderCommand: []string{
			"ffmpeg", "-y", "-f", "alsa", "-i", "default", "-t", "10", "{output}",
		},
		SweepExcludeDomains: []string{"github.com", "gitlab.com"},
	}
}

// Load reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if saveErr := Save(path, &cfg); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &cfg, nil
			}
			return &cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if cfg.AIModel == "" {
		cfg.AIModel = defaults.AIModel
	}
	if cfg.RecorderCommand == nil {
		cfg.RecorderCommand = defaults.RecorderCommand
	}
	if cfg.SweepExcludeDomains == nil {
		cfg.SweepExcludeDomains = defaults.SweepExcludeDomains
	}

	return &cfg, nil
}

// Save writes config to the JSON file.
// Creates the directory if it doesn't exist.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config path: ~/.config/grimoire/config.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "grimoire", "config.json"), nil
}
