// Package config provides configuration loading and validation for the
// portfolio chat service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults used when neither the config file nor the environment provides a
// value.
const (
	DefaultResumeJSONPath = "content/resume.json"
	DefaultResumeTextPath = "content/resume.txt"
	DefaultPort           = 8080
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from the
// environment. Missing résumé files are handled downstream by the store, not
// here: a deployment may legitimately carry only one of the two.
type Config struct {
	ResumeJSONPath string `json:"resume_json,omitempty"` // Path to the structured résumé document
	ResumeTextPath string `json:"resume_text,omitempty"` // Path to the raw résumé text
	Port           int    `json:"port,omitempty"`        // HTTP listen port
	Model          string `json:"model,omitempty"`       // Completion model name override
	APIKey         string `json:"api_key,omitempty"`     // Gemini API key (prefer the environment)
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

// ApplyEnv overrides config values from the environment. Environment values
// win over file values so deployments can keep credentials out of files.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUME_JSON_PATH"); v != "" {
		c.ResumeJSONPath = v
	}
	if v := os.Getenv("RESUME_TEXT_PATH"); v != "" {
		c.ResumeTextPath = v
	}
}

// ApplyDefaults fills unset fields with the package defaults.
func (c *Config) ApplyDefaults() {
	if c.ResumeJSONPath == "" {
		c.ResumeJSONPath = DefaultResumeJSONPath
	}
	if c.ResumeTextPath == "" {
		c.ResumeTextPath = DefaultResumeTextPath
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// Load builds the effective configuration: optional file, then environment,
// then defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
