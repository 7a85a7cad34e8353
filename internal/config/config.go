package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. WRITEGUIDE_SOURCE.
const EnvPrefix = "WRITEGUIDE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WRITEGUIDE_*). Nested keys use a double
// underscore: WRITEGUIDE_LOG__LEVEL sets log.level.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("source is required")
	}

	if c.NarrowWidth < 0 {
		return fmt.Errorf("narrow_width must be non-negative")
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must be non-negative")
	}

	if c.Log.Level != "" && !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}

	return nil
}

// Timeout returns HTTPTimeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
