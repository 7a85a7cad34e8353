package config

import (
	"os"
	"path/filepath"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".writeguide.yml"

// validLogLevels is the set of recognized log levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:       ".",
		NarrowWidth:  100,
		HTTPTimeout:  0,
		DiscardStale: true,
		Log: LogConfig{
			Level: "info",
		},
		Serve: ServeConfig{
			Port:     8080,
			AllowAll: false,
		},
	}
}

// BrowseLogFile is where the terminal browser logs: the configured file, or
// writeguide.log in the user's temp directory.
func (c *Config) BrowseLogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(os.TempDir(), "writeguide.log")
}
