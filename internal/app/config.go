package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	EnvPath   string   // descriptor file or directory
	Catalog   string   // optional override of the descriptor's source location
	Platforms []string // optional override of the descriptor's platform list

	Output    string // report format: text or json
	LogFormat string
	LogLevel  string
	Workers   int
	Timeout   time.Duration
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.EnvPath == "" {
		return nil, errors.New("EnvPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, errors.New("Output must be 'text' or 'json'")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &cfg, nil
}
