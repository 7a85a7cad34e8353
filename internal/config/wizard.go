package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectSource looks for a content store next to the working directory.
func detectSource() string {
	for _, dir := range []string{".", "site", "public", "docs"} {
		if _, err := os.Stat(filepath.Join(dir, "data", "manifest.json")); err == nil {
			return dir
		}
	}
	return "."
}

// validateSource accepts URLs as-is and requires directories to hold a manifest.
func validateSource(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("source is required")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return nil
	}
	if _, err := os.Stat(filepath.Join(s, "data", "manifest.json")); err != nil {
		return fmt.Errorf("no data/manifest.json under %s", s)
	}
	return nil
}

func validateWidth(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a non-negative number of columns")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to writeguide! Let's point it at your content.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Source kind.
	kindPrompt := promptui.Select{
		Label: "Where is the content store",
		Items: []string{
			"local directory: contains data/manifest.json",
			"web host:        serves data/manifest.json over HTTP",
		},
	}
	kindIdx, _, err := kindPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	// 2. Source location.
	sourcePrompt := promptui.Prompt{
		Label:    "Content directory",
		Default:  detectSource(),
		Validate: validateSource,
	}
	if kindIdx == 1 {
		sourcePrompt.Label = "Base URL"
		sourcePrompt.Default = "https://"
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	// 3. Narrow width.
	widthPrompt := promptui.Prompt{
		Label:    "Collapse the sidebar below this terminal width",
		Default:  strconv.Itoa(defaults.NarrowWidth),
		Validate: validateWidth,
	}
	widthStr, err := widthPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("narrow width: %w", err)
	}
	width, _ := strconv.Atoi(strings.TrimSpace(widthStr))

	// 4. Log level.
	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []string{"info", "warn", "error", "debug"},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := defaults
	cfg.Source = strings.TrimSpace(source)
	cfg.NarrowWidth = width
	cfg.Log.Level = level

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
