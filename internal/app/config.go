package app

import "fmt"

// Config holds everything an App instance needs to run.
type Config struct {
	// Tree restricts output to a single registered tree; empty means all.
	Tree string
	// Brief suppresses help text, flags, callbacks and variable detail.
	Brief bool
	// Dump writes the structural debug dump instead of grammar syntax.
	Dump bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: expected 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: expected 'debug', 'info', 'warn' or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}
