// Package cli implements the operator-facing comparison tool.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dapub1013/deadstream/internal/app"
	"github.com/dapub1013/deadstream/internal/config"
	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/internal/domain/normalize"
	"github.com/dapub1013/deadstream/internal/domain/profile"
	"github.com/dapub1013/deadstream/internal/domain/scoring"
	"github.com/dapub1013/deadstream/pkg/logger"
	"github.com/dapub1013/deadstream/pkg/metrics"
)

// Persistent flag values.
var (
	catalogPath string
	presetName  string
	weightsFlag string
	logLevel    string
)

// Loaded once in the persistent pre-run and shared by all commands.
var (
	cfg *config.Config
	svc *app.Service
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "deadstream",
	Short: "Pick the best recording of a live show",
	Long: `deadstream compares the independently produced recordings of a live
event (soundboard, matrix, audience, FM broadcast) and selects one
deterministically using a weighted quality score.

Scores combine five components: capture source, audio format, community
rating, lineage generation, and taper reputation. Weight presets
(balanced, audiophile, crowd_favorite) or fully custom weights control
how the components trade off.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initialize(cmd)
	},
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() { //nolint:gochecknoinits // cobra command registration
	// Accept underscore spellings (--log_level) alongside dashed flags so
	// flag names line up with the config file keys.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"catalog dump file, JSON or YAML (default from config)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "",
		"weight preset: balanced, audiophile, crowd_favorite")
	rootCmd.PersistentFlags().StringVar(&weightsFlag, "weights", "",
		"custom weights as component=value pairs, e.g. source_type=0.4,format=0.3,community_rating=0.2,lineage=0.05,taper=0.05")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error (default from config)")
}

// initialize loads config, sets up logging and metrics, and builds the
// selection service. Log output goes to stderr so stdout stays clean for
// report output.
func initialize(cmd *cobra.Command) error {
	if err := logger.InitWithWriter(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	var err error
	cfg, err = config.Load(cmd.Context())
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.SetLevelString(level); err != nil {
		return err
	}

	metrics.SetEnabled(cfg.MetricsEnabled)

	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}

	svc = app.New(
		app.WithLogger(logger.Get()),
		app.WithNormalizer(normalize.New(
			normalize.WithHighBitrateThreshold(cfg.HighBitrateKbps),
		)),
		app.WithScorer(scoring.New(
			scoring.WithTaperTable(cfg.TaperScores),
			scoring.WithReviewConfidenceThreshold(cfg.ReviewConfidenceThreshold),
		)),
	)

	return nil
}

// activeProfile resolves the profile for this invocation. Priority:
// --weights flag, --preset flag, the configured custom weights when the
// configured default is "custom", then the configured default preset.
func activeProfile() (profile.Profile, error) {
	if weightsFlag != "" {
		weights, err := parseWeights(weightsFlag)
		if err != nil {
			return profile.Profile{}, err
		}
		p, err := profile.New(profile.NameCustom, weights)
		if err != nil {
			metrics.RecordInvalidProfile()
			return profile.Profile{}, err
		}
		if err := svc.Profiles().Swap(p); err != nil {
			return profile.Profile{}, err
		}
		metrics.RecordProfileSwap()
		return p, nil
	}

	name := presetName
	if name == "" {
		name = cfg.DefaultPreset
	}

	if name == profile.NameCustom {
		if err := svc.Profiles().SwapWeights(cfg.CustomWeights); err != nil {
			metrics.RecordInvalidProfile()
			return profile.Profile{}, fmt.Errorf("custom_weights in config: %w", err)
		}
		metrics.RecordProfileSwap()
		return svc.Profiles().Active(), nil
	}

	p, err := profile.Preset(name)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := svc.Profiles().Swap(p); err != nil {
		return profile.Profile{}, err
	}
	metrics.RecordProfileSwap()
	return p, nil
}

// parseWeights parses "component=value,component=value" into a weight map.
// Unknown component names are rejected here so typos surface as flag
// errors rather than silently zero-weighted components.
func parseWeights(s string) (map[string]float64, error) {
	known := make(map[string]bool, len(model.Components()))
	for _, c := range model.Components() {
		known[c] = true
	}

	weights := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("malformed weight %q, want component=value", pair)
		}
		key = strings.TrimSpace(key)
		if !known[key] {
			return nil, fmt.Errorf("unknown component %q, want one of %s", key, strings.Join(model.Components(), ", "))
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("weight for %q: %w", key, err)
		}
		weights[key] = w
	}
	return weights, nil
}
