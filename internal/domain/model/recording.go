// Package model contains domain models passed between layers.
package model

// SourceType classifies how a recording was captured.
type SourceType int

// The zero value is the unknown variant, so a Recording that never went
// through normalization degrades to neutral scoring instead of silently
// claiming the best category.
const (
	SourceUnknown SourceType = iota
	Soundboard
	Matrix
	FMBroadcast
	Audience
)

// Priority returns the tie-break precedence of the source type, lower is
// better: soundboard > matrix > fm_broadcast > audience > unknown.
func (s SourceType) Priority() int {
	switch s {
	case Soundboard:
		return 0
	case Matrix:
		return 1
	case FMBroadcast:
		return 2
	case Audience:
		return 3
	default:
		return 4
	}
}

// String returns the canonical lowercase name for the source type.
func (s SourceType) String() string {
	switch s {
	case Soundboard:
		return "soundboard"
	case Matrix:
		return "matrix"
	case FMBroadcast:
		return "fm_broadcast"
	case Audience:
		return "audience"
	default:
		return "unknown"
	}
}

// Format classifies the audio encoding of a recording.
type Format int

// The zero value is the unknown variant, matching SourceType.
const (
	FormatUnknown Format = iota
	Lossless
	HighBitrateLossy
	LowBitrateLossy
)

// String returns the canonical lowercase name for the format.
func (f Format) String() string {
	switch f {
	case Lossless:
		return "lossless"
	case HighBitrateLossy:
		return "high_bitrate_lossy"
	case LowBitrateLossy:
		return "low_bitrate_lossy"
	default:
		return "unknown"
	}
}

// RawRecord is one recording's metadata as it arrives from the catalog:
// free-text fields, inconsistent casing, and anything may be missing.
// Tags mirror the archive dump schema consumed by the catalog adapter.
type RawRecord struct {
	Identifier  string   `json:"identifier" yaml:"identifier"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	BitrateKbps int      `json:"bitrate_kbps,omitempty" yaml:"bitrate_kbps,omitempty"`
	Lineage     string   `json:"lineage,omitempty" yaml:"lineage,omitempty"`
	Generation  int      `json:"generation,omitempty" yaml:"generation,omitempty"`
	Taper       string   `json:"taper,omitempty" yaml:"taper,omitempty"`
	AvgRating   *float64 `json:"avg_rating,omitempty" yaml:"avg_rating,omitempty"`
	NumReviews  int      `json:"num_reviews,omitempty" yaml:"num_reviews,omitempty"`
}

// Recording is the normalized, immutable view of one candidate recording.
// Optional fields use presence flags rather than zero values so that
// "absent" and "rated 0.0" stay distinguishable downstream.
type Recording struct {
	Identifier string
	Source     SourceType
	Format     Format

	AvgRating  float64 // valid only when HasRating
	HasRating  bool
	NumReviews int

	LineageGen int // copy generation, 1 = master; valid only when HasLineage
	HasLineage bool

	Taper string // empty when unknown
}
