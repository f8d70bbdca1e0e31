// Package profile defines weight profiles for the scoring aggregator.
//
// A profile assigns one non-negative weight per scoring component, summing
// to 1.0 within a small tolerance. Validation happens here, at construction
// time; the aggregator trusts any Profile it is handed.
package profile

import (
	"fmt"
	"math"

	"github.com/dapub1013/deadstream/internal/domain/model"
)

// Validation tolerance for the weight sum.
const sumTolerance = 0.01

// Preset names recognized by Preset.
const (
	PresetBalanced      = "balanced"
	PresetAudiophile    = "audiophile"
	PresetCrowdFavorite = "crowd_favorite"
	NameCustom          = "custom"
)

// Profile is an immutable, validated weight vector. Construct via New or a
// preset; a zero Profile is not valid.
type Profile struct {
	name    string
	weights map[string]float64
}

// New validates weights and returns a Profile. Every component must be
// present with a non-negative weight and the weights must sum to 1.0
// within +-0.01, otherwise ErrInvalidProfile is returned.
func New(name string, weights map[string]float64) (Profile, error) {
	sum := 0.0
	for _, component := range model.Components() {
		w, ok := weights[component]
		if !ok {
			return Profile{}, fmt.Errorf("%w: missing weight for %q", ErrInvalidProfile, component)
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return Profile{}, fmt.Errorf("%w: weight for %q must be non-negative, got %v", ErrInvalidProfile, component, w)
		}
		sum += w
	}
	if len(weights) != len(model.Components()) {
		return Profile{}, fmt.Errorf("%w: unrecognized component keys present", ErrInvalidProfile)
	}
	if math.Abs(sum-1.0) > sumTolerance {
		return Profile{}, fmt.Errorf("%w: weights sum to %.4f, want 1.0 within %.2f", ErrInvalidProfile, sum, sumTolerance)
	}

	// Copy so later mutation of the caller's map cannot leak in.
	own := make(map[string]float64, len(weights))
	for k, v := range weights {
		own[k] = v
	}
	return Profile{name: name, weights: own}, nil
}

// Name returns the profile's name.
func (p Profile) Name() string { return p.name }

// Weight returns the weight for a component. Unknown components weigh zero.
func (p Profile) Weight(component string) float64 { return p.weights[component] }

// Weights returns a copy of the weight map.
func (p Profile) Weights() map[string]float64 {
	out := make(map[string]float64, len(p.weights))
	for k, v := range p.weights {
		out[k] = v
	}
	return out
}

// Preset returns a built-in profile by name. The built-ins are constructed
// fresh on every call, so callers can never mutate shared state.
func Preset(name string) (Profile, error) {
	switch name {
	case PresetBalanced:
		return mustNew(PresetBalanced, map[string]float64{
			model.ComponentSource:  0.35,
			model.ComponentFormat:  0.25,
			model.ComponentRating:  0.20,
			model.ComponentLineage: 0.10,
			model.ComponentTaper:   0.10,
		}), nil
	case PresetAudiophile:
		return mustNew(PresetAudiophile, map[string]float64{
			model.ComponentSource:  0.25,
			model.ComponentFormat:  0.45,
			model.ComponentRating:  0.15,
			model.ComponentLineage: 0.10,
			model.ComponentTaper:   0.05,
		}), nil
	case PresetCrowdFavorite:
		return mustNew(PresetCrowdFavorite, map[string]float64{
			model.ComponentSource:  0.20,
			model.ComponentFormat:  0.15,
			model.ComponentRating:  0.50,
			model.ComponentLineage: 0.10,
			model.ComponentTaper:   0.05,
		}), nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// PresetNames lists the built-in preset names in display order.
func PresetNames() []string {
	return []string{PresetBalanced, PresetAudiophile, PresetCrowdFavorite}
}

// Default returns the balanced preset.
func Default() Profile {
	p, _ := Preset(PresetBalanced)
	return p
}

func mustNew(name string, weights map[string]float64) Profile {
	p, err := New(name, weights)
	if err != nil {
		panic(fmt.Sprintf("built-in preset %q invalid: %v", name, err))
	}
	return p
}
