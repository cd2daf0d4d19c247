// Package config provides configuration loading and validation for the CLI and the scoring engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ScoringConfig string `json:"scoring_config,omitempty"` // Path to scoring config JSON (keywords, weights)
	JD            string `json:"jd,omitempty"`             // Path to job description text file
	LogFile       string `json:"log_file,omitempty"`       // Path to the scoring event log

	// Inputs
	JDKeywords      []string `json:"jd_keywords,omitempty"`      // Explicit JD keyword list (overrides jd)
	YearsExperience int      `json:"years_experience,omitempty"` // Declared years of experience

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key for review
	Verbose bool   `json:"verbose,omitempty"` // Print boxed score summaries
	Port    int    `json:"port,omitempty"`    // HTTP port for serve
	Workers int    `json:"workers,omitempty"` // Parallel scoring workers for batches
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.YearsExperience < 0 {
		return fmt.Errorf("config error: 'years_experience' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.ScoringConfig != "" {
		if _, err := os.Stat(c.ScoringConfig); os.IsNotExist(err) {
			return fmt.Errorf("config error: scoring config file not found: %s", c.ScoringConfig)
		}
	}

	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JD)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ScoringConfig == "" {
		result.ScoringConfig = defaults.ScoringConfig
	}
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if len(result.JDKeywords) == 0 {
		result.JDKeywords = defaults.JDKeywords
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// YearsExperience: zero is a legitimate value, so it is never defaulted.
	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LoadScoring returns the scoring configuration named by c, or the defaults when none is set.
func (c *Config) LoadScoring() (*ScoringConfig, error) {
	if c.ScoringConfig == "" {
		return DefaultScoringConfig(), nil
	}
	return LoadScoringConfig(c.ScoringConfig)
}
