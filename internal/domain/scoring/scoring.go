// Package scoring computes per-component quality scores and weighted totals
// for normalized recordings.
//
// The five component scorers form a closed set of pure functions. Every
// scorer maps missing data to the neutral midpoint of its scale (50), never
// to the minimum: absence of information is not evidence of low quality,
// and changing that default would change selection outcomes for most
// sparsely annotated recordings.
package scoring

import (
	"strings"

	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/internal/domain/profile"
)

// Default scoring configuration constants.
const (
	maxScore     = 100.0
	neutralScore = 50.0

	// Lineage decays a fixed step per copy generation past the master,
	// floored so even deep copies keep a nonzero score.
	lineageStep  = 15.0
	lineageFloor = 20.0

	// Ratings backed by fewer reviews than this blend toward neutral.
	defaultReviewConfidence = 5

	maxRating = 5.0
)

// Scorer computes component breakdowns for recordings. It is stateless
// after construction and safe for concurrent use.
type Scorer struct {
	taperScores      map[string]float64
	reviewConfidence int
}

// New creates a Scorer with the default taper table and review threshold.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		taperScores: map[string]float64{
			// Tapers with a long track record of clean masters.
			"charlie miller": 100,
			"betty cantor":   100,
			"dan healy":      98,
			"rob bertrando":  95,
			"jim vita":       92,
			"mike millard":   95,
		},
		reviewConfidence: defaultReviewConfidence,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes all five component scores for a recording. The total is
// left zero; Aggregate applies a weight profile to fill it in.
func (s *Scorer) Score(rec model.Recording) model.Breakdown {
	return model.Breakdown{
		Components: map[string]float64{
			model.ComponentSource:  SourceScore(rec.Source),
			model.ComponentFormat:  FormatScore(rec.Format),
			model.ComponentRating:  s.ratingScore(rec),
			model.ComponentLineage: LineageScore(rec),
			model.ComponentTaper:   s.taperScore(rec.Taper),
		},
	}
}

// Aggregate applies a weight profile to a breakdown's component scores and
// returns the breakdown with its weighted total. It performs no profile
// validation; that is enforced at profile construction.
func Aggregate(b model.Breakdown, p profile.Profile) model.Breakdown {
	total := 0.0
	for component, score := range b.Components {
		total += p.Weight(component) * score
	}
	b.Total = total
	return b
}

// SourceScore is a fixed lookup per capture source. Unknown is neutral,
// not punitive.
func SourceScore(src model.SourceType) float64 {
	switch src {
	case model.Soundboard:
		return 100
	case model.Matrix:
		return 85
	case model.FMBroadcast:
		return 70
	case model.Audience:
		return 55
	default:
		return neutralScore
	}
}

// FormatScore is a fixed lookup per encoding.
func FormatScore(f model.Format) float64 {
	switch f {
	case model.Lossless:
		return 100
	case model.HighBitrateLossy:
		return 80
	case model.LowBitrateLossy:
		return 50
	default:
		return 40
	}
}

// ratingScore maps the community rating onto [0,100], blended linearly
// toward neutral as the review count falls below the confidence threshold.
// An absent rating scores exactly neutral.
func (s *Scorer) ratingScore(rec model.Recording) float64 {
	if !rec.HasRating {
		return neutralScore
	}
	raw := rec.AvgRating / maxRating * maxScore
	if rec.NumReviews >= s.reviewConfidence {
		return raw
	}
	confidence := float64(rec.NumReviews) / float64(s.reviewConfidence)
	return neutralScore + (raw-neutralScore)*confidence
}

// LineageScore rewards recordings close to the original master. An unknown
// lineage scores neutral.
func LineageScore(rec model.Recording) float64 {
	if !rec.HasLineage || rec.LineageGen < 1 {
		return neutralScore
	}
	score := maxScore - lineageStep*float64(rec.LineageGen-1)
	if score < lineageFloor {
		return lineageFloor
	}
	return score
}

// taperScore looks the taper up in the recognized-taper table. Matching is
// case-insensitive on the trimmed attribution string; unrecognized or
// absent tapers score neutral.
func (s *Scorer) taperScore(taper string) float64 {
	taper = strings.ToLower(strings.TrimSpace(taper))
	if taper == "" {
		return neutralScore
	}
	if score, ok := s.taperScores[taper]; ok {
		return score
	}
	return neutralScore
}
