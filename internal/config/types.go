package config

// Config is the top-level writeguide configuration, corresponding to .writeguide.yml.
type Config struct {
	// Source is the content store: an http(s) URL or a local directory
	// containing data/manifest.json.
	Source string `yaml:"source" koanf:"source"`
	// NarrowWidth is the terminal width, in columns, below which the sidebar
	// collapses after a point is shown.
	NarrowWidth int `yaml:"narrow_width" koanf:"narrow_width"`
	// HTTPTimeout bounds each request to an HTTP store, in seconds. Zero
	// leaves the transport default.
	HTTPTimeout int `yaml:"http_timeout" koanf:"http_timeout"`
	// DiscardStale drops fetch results that belong to an older selection.
	DiscardStale bool        `yaml:"discard_stale" koanf:"discard_stale"`
	Log          LogConfig   `yaml:"log" koanf:"log"`
	Serve        ServeConfig `yaml:"serve" koanf:"serve"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	// File receives logs. The terminal browser always logs to a file so that
	// it does not draw over the UI; see BrowseLogFile.
	File string `yaml:"file" koanf:"file"`
}

// ServeConfig holds settings for `writeguide serve`.
type ServeConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
