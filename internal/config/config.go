// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cv-generator/internal/export"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Collaborators
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Model      string `json:"model,omitempty"`       // Gemini model name override
	ChromePath string `json:"chrome_path,omitempty"` // Headless browser executable

	// Export
	Language string  `json:"language,omitempty"` // Target export language
	Scale    float64 `json:"scale,omitempty"`    // Rasterization scale factor

	// One-shot export paths
	Input  string `json:"input,omitempty"`  // Path to a CV document JSON file
	Output string `json:"output,omitempty"` // Path to write the exported PDF
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	if c.Scale < 0 {
		return fmt.Errorf("config error: 'scale' must be non-negative")
	}
	if c.Language != "" && !export.IsSupportedLanguage(c.Language) {
		return fmt.Errorf("config error: unsupported language %q (supported: %v)", c.Language, export.SupportedLanguages())
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.Scale == 0 {
		result.Scale = defaults.Scale
	}
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	return result
}
