// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel errors.
package config

// Config contains process configuration for the selection tool.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CatalogPath points at the recording catalog dump (JSON or YAML).
	CatalogPath string `koanf:"catalog_path"`

	// DefaultPreset names the weight preset active at startup.
	DefaultPreset string `koanf:"default_preset"`

	// CustomWeights defines the "custom" profile. Keys are the five
	// component names; values must be non-negative and sum to 1.0 (+-0.01).
	CustomWeights map[string]float64 `koanf:"custom_weights"`

	// TaperScores maps recognized taper names to their component score.
	// Empty means the built-in table.
	TaperScores map[string]float64 `koanf:"taper_scores"`

	// ReviewConfidenceThreshold is the review count below which community
	// ratings blend toward neutral.
	ReviewConfidenceThreshold int `koanf:"review_confidence_threshold"`

	// HighBitrateKbps is the cutoff between high and low bitrate lossy.
	HighBitrateKbps int `koanf:"high_bitrate_kbps"`

	// BarWidth sets the width in characters of the comparison bars.
	BarWidth int `koanf:"bar_width"`

	// MetricsEnabled toggles Prometheus metric recording.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                  "info",
		CatalogPath:               "catalog.json",
		DefaultPreset:             "balanced",
		ReviewConfidenceThreshold: 5,
		HighBitrateKbps:           256,
		BarWidth:                  40,
		MetricsEnabled:            true,
	}
}
