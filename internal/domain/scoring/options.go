package scoring

import "strings"

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithTaperTable replaces the recognized-taper table. Names are matched
// case-insensitively; scores are clamped to [0,100]. Empty names and an
// empty table are ignored.
func WithTaperTable(scores map[string]float64) Option {
	return func(s *Scorer) {
		if len(scores) == 0 {
			return
		}
		table := make(map[string]float64, len(scores))
		for name, score := range scores {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if score < 0 {
				score = 0
			}
			if score > maxScore {
				score = maxScore
			}
			table[name] = score
		}
		if len(table) > 0 {
			s.taperScores = table
		}
	}
}

// WithReviewConfidenceThreshold sets the review count below which ratings
// blend toward the neutral score.
func WithReviewConfidenceThreshold(reviews int) Option {
	return func(s *Scorer) {
		if reviews > 0 {
			s.reviewConfidence = reviews
		}
	}
}
