// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for a pipeline run.
//
// Only operational knobs live here. The transformation math (attribute
// weights, tier quantiles, minimum games) is fixed in the domain packages
// and intentionally not configurable.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Season identifies the season to fetch, e.g. "2023-24".
	Season string `koanf:"season"`

	// DataDir is the directory the CSV outputs are written to.
	DataDir string `koanf:"data_dir"`

	// BaseURL is the stats provider origin.
	BaseURL string `koanf:"base_url"`

	// TimeoutMS bounds the provider HTTP request in milliseconds.
	TimeoutMS int `koanf:"timeout_ms"`

	// UserAgent is sent on provider requests; the endpoint rejects
	// clients that do not look like a browser.
	UserAgent string `koanf:"user_agent"`
}

// Default configuration values.
const (
	defaultSeason    = "2023-24"
	defaultDataDir   = "data"
	defaultBaseURL   = "https://stats.nba.com"
	defaultTimeoutMS = 30_000
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Season:    defaultSeason,
		DataDir:   defaultDataDir,
		BaseURL:   defaultBaseURL,
		TimeoutMS: defaultTimeoutMS,
		UserAgent: defaultUserAgent,
	}
}
