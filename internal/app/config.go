package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // main OCEAN JSON output file
	RulesPath  string // optional HCL discovery-rules manifest
	OutputPath string // archive destination; empty means the app's writer

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
