// Package metrics provides Prometheus metrics for the recording selection
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Score histogram buckets spanning the 0-100 score scale.
var scoreBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100} //nolint:gochecknoglobals // shared bucket layout

// Manager owns all Prometheus metrics for the selection engine.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  prometheus.Registerer

	// Selection outcomes
	selections       prometheus.Counter
	manualSelections prometheus.Counter
	selectionErrors  *prometheus.CounterVec
	candidatesScored prometheus.Counter

	// Score quality distributions
	winningScore prometheus.Histogram
	margin       prometheus.Histogram

	// Current workload
	activeCandidates prometheus.Gauge

	// Profile management
	profileSwaps    prometheus.Counter
	invalidProfiles prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "deadstream",
		subsystem: "selection",
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.selections = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selections_total",
		Help:      "Total number of automatic selections performed",
	})

	m.manualSelections = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "manual_selections_total",
		Help:      "Total number of manual overrides honored",
	})

	m.selectionErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "selection_errors_total",
			Help:      "Total number of rejected selection requests by kind",
		},
		[]string{"kind"},
	)

	m.candidatesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scored_total",
		Help:      "Total number of candidate recordings scored",
	})

	m.winningScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "winning_score",
		Help:      "Distribution of winning total scores (0-100)",
		Buckets:   scoreBuckets,
	})

	m.margin = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_margin",
		Help:      "Distribution of score margins between rank 1 and rank 2",
		Buckets:   scoreBuckets,
	})

	m.activeCandidates = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_candidates",
		Help:      "Number of candidates in the most recent selection",
	})

	m.profileSwaps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profile_swaps_total",
		Help:      "Total number of successful weight profile swaps",
	})

	m.invalidProfiles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_profiles_total",
		Help:      "Total number of weight profiles rejected at validation",
	})
}

// Package-level recording functions against the global manager.

// RecordSelection counts one completed automatic selection.
func RecordSelection() {
	if globalManager.enabled {
		globalManager.selections.Inc()
	}
}

// RecordManualSelection counts one honored manual override.
func RecordManualSelection() {
	if globalManager.enabled {
		globalManager.manualSelections.Inc()
	}
}

// RecordSelectionError counts one rejected selection request.
func RecordSelectionError(kind string) {
	if globalManager.enabled {
		globalManager.selectionErrors.WithLabelValues(kind).Inc()
	}
}

// RecordCandidatesScored counts scored candidates.
func RecordCandidatesScored(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.candidatesScored.Add(float64(n))
	}
}

// ObserveWinningScore records the winner's total score.
func ObserveWinningScore(score float64) {
	if globalManager.enabled {
		globalManager.winningScore.Observe(score)
	}
}

// ObserveMargin records the gap between the top two candidates.
func ObserveMargin(margin float64) {
	if globalManager.enabled {
		globalManager.margin.Observe(margin)
	}
}

// UpdateActiveCandidates sets the candidate pool size of the latest selection.
func UpdateActiveCandidates(n int) {
	if globalManager.enabled {
		globalManager.activeCandidates.Set(float64(n))
	}
}

// RecordProfileSwap counts one successful profile replacement.
func RecordProfileSwap() {
	if globalManager.enabled {
		globalManager.profileSwaps.Inc()
	}
}

// RecordInvalidProfile counts one rejected profile.
func RecordInvalidProfile() {
	if globalManager.enabled {
		globalManager.invalidProfiles.Inc()
	}
}

// SetEnabled toggles recording on the global manager.
func SetEnabled(enabled bool) {
	globalManager.enabled = enabled
}

// GetRegistry returns the custom registry backing the global manager, for
// embedders that want to expose or scrape it.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
