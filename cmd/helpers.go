package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/writeguide/internal/config"
	"github.com/ziadkadry99/writeguide/internal/content"
	"github.com/ziadkadry99/writeguide/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
// The --source flag wins over the file and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `writeguide init` to create a config file", err)
	}
	if sourceArg != "" {
		cfg.Source = sourceArg
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger. A non-empty file overrides the
// configured destination.
func newLogger(cfg *config.Config, file string) (*zap.Logger, error) {
	if file == "" {
		file = cfg.Log.File
	}
	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    file,
		Verbose: verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// openStore opens the configured content store.
func openStore(cfg *config.Config) (content.Store, error) {
	store, err := content.NewStore(cfg.Source, content.Options{Timeout: cfg.Timeout()})
	if err != nil {
		return nil, fmt.Errorf("opening content store: %w", err)
	}
	return store, nil
}
