package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the report agent tools.
type Config struct {
	Gemini  Gemini  `yaml:"gemini"`
	Logging Logging `yaml:"logging"`
}

// Gemini holds endpoint and credentials for the Google Generative Language
// API.
type Gemini struct {
	APIKey         string `yaml:"api_key"`
	Host           string `yaml:"host"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Logging configures the application logger.
type Logging struct {
	Level string `yaml:"level"`
}

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultHost           = "https://generativelanguage.googleapis.com"
	DefaultModel          = "gemini-1.5-pro-latest"
	DefaultTimeoutSeconds = 60
)

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads the YAML configuration file at the given path, parses it into a
// Config struct, fills in defaults, and then applies environment variable
// overrides. An empty path or a missing file is not an error: the tools run
// on defaults plus the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Gemini.Host == "" {
		cfg.Gemini.Host = DefaultHost
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultModel
	}
	if cfg.Gemini.TimeoutSeconds <= 0 {
		cfg.Gemini.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GOOGLE_AI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}

	if v := os.Getenv("GEMINI_HOST"); v != "" {
		cfg.Gemini.Host = v
	}

	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
