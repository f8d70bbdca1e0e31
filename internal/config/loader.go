package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DEADSTREAM_CONFIG is set
//  3. env (prefix DEADSTREAM_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DEADSTREAM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DEADSTREAM_LOG_LEVEL, DEADSTREAM_BAR_WIDTH, ...
	// Keys map to the koanf tags with underscores preserved.
	envProvider := env.Provider("DEADSTREAM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "deadstream_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations that would misbehave downstream. Weight
// profile validation itself lives in the profile package; here we only
// check fields the profile package never sees.
func validate(cfg *Config) error {
	if cfg.BarWidth <= 0 {
		return fmt.Errorf("%w: bar_width must be positive", ErrInvalidConfig)
	}
	if cfg.ReviewConfidenceThreshold < 0 {
		return fmt.Errorf("%w: review_confidence_threshold must not be negative", ErrInvalidConfig)
	}
	if cfg.HighBitrateKbps <= 0 {
		return fmt.Errorf("%w: high_bitrate_kbps must be positive", ErrInvalidConfig)
	}
	for name, score := range cfg.TaperScores {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: taper score for %q out of [0,100]", ErrInvalidConfig, name)
		}
	}
	return nil
}
