package model

// Component names used as keys in breakdowns and weight profiles.
// The set is closed: scoring and profile validation both enumerate it.
const (
	ComponentSource  = "source_type"
	ComponentFormat  = "format"
	ComponentRating  = "community_rating"
	ComponentLineage = "lineage"
	ComponentTaper   = "taper"
)

// Components lists the five component names in presentation order.
func Components() []string {
	return []string{
		ComponentSource,
		ComponentFormat,
		ComponentRating,
		ComponentLineage,
		ComponentTaper,
	}
}

// Breakdown is the scored view of one recording: each component score and
// the weighted total, all in [0,100]. Recomputed on demand, never cached.
type Breakdown struct {
	Components map[string]float64 `json:"components"`
	Total      float64            `json:"total"`
}

// RankedEntry pairs a recording with its breakdown at a given rank.
type RankedEntry struct {
	Identifier string    `json:"identifier"`
	Breakdown  Breakdown `json:"breakdown"`
}

// Ranking is an ordered comparison of all candidates for one event,
// best first. Margin is the total-score gap between the top two entries
// (zero when fewer than two candidates exist).
type Ranking struct {
	Entries []RankedEntry `json:"entries"`
	Margin  float64       `json:"margin"`
}

// Winner returns the top-ranked entry. Callers must ensure the ranking is
// non-empty; selection surfaces an explicit error for empty candidate sets
// before a Ranking is ever built.
func (r Ranking) Winner() RankedEntry {
	return r.Entries[0]
}
