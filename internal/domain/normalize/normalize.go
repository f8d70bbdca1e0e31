// Package normalize maps raw, inconsistently formatted recording metadata
// into the closed categorical types used by scoring.
//
// Normalization never fails: unmatched or missing input degrades to the
// category's unknown value. The vocabularies are priority-ordered, so new
// source or format spellings can be added without touching scoring logic.
package normalize

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dapub1013/deadstream/internal/domain/model"
)

// Default normalization constants.
const (
	defaultHighBitrateKbps = 256
	clampRatingMax         = 5.0
)

// pattern maps a substring to a category; earlier entries win.
type sourcePattern struct {
	substr string
	source model.SourceType
}

type formatPattern struct {
	substr string
	format model.Format
}

// Normalizer converts RawRecords into Recordings.
type Normalizer struct {
	sourceVocab     []sourcePattern
	formatVocab     []formatPattern
	highBitrateKbps int
}

// New creates a Normalizer with the default vocabularies.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		sourceVocab: []sourcePattern{
			{"sbd", model.Soundboard},
			{"soundboard", model.Soundboard},
			{"board", model.Soundboard},
			{"mtx", model.Matrix},
			{"matrix", model.Matrix},
			{"fm", model.FMBroadcast},
			{"broadcast", model.FMBroadcast},
			{"aud", model.Audience},
			{"audience", model.Audience},
		},
		formatVocab: []formatPattern{
			{"flac", model.Lossless},
			{"shn", model.Lossless},
			{"wav", model.Lossless},
			{"lossless", model.Lossless},
			{"320", model.HighBitrateLossy},
			{"v0", model.HighBitrateLossy},
			{"mp3", model.LowBitrateLossy},
			{"aac", model.LowBitrateLossy},
			{"ogg", model.LowBitrateLossy},
			{"vbr", model.LowBitrateLossy},
		},
		highBitrateKbps: defaultHighBitrateKbps,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize converts a raw catalog record into a Recording. It has no side
// effects; absent or unrecognized fields map to the unknown/absent variant.
func (n *Normalizer) Normalize(raw model.RawRecord) model.Recording {
	rec := model.Recording{
		Identifier: raw.Identifier,
		Source:     n.source(raw.Source),
		Format:     n.format(raw.Format, raw.BitrateKbps),
		NumReviews: raw.NumReviews,
		Taper:      strings.TrimSpace(raw.Taper),
	}

	if raw.AvgRating != nil {
		rec.AvgRating = clamp(*raw.AvgRating, 0, clampRatingMax)
		rec.HasRating = true
	}
	if rec.NumReviews < 0 {
		rec.NumReviews = 0
	}

	if gen, ok := n.generation(raw); ok {
		rec.LineageGen = gen
		rec.HasLineage = true
	}

	return rec
}

// source resolves a free-text source field against the vocabulary.
func (n *Normalizer) source(text string) model.SourceType {
	text = fold(text)
	if text == "" {
		return model.SourceUnknown
	}
	for _, p := range n.sourceVocab {
		if strings.Contains(text, p.substr) {
			return p.source
		}
	}
	return model.SourceUnknown
}

// format resolves the format field, falling back to the bitrate when the
// text alone is a lossy match or no match at all.
func (n *Normalizer) format(text string, bitrateKbps int) model.Format {
	text = fold(text)
	for _, p := range n.formatVocab {
		if strings.Contains(text, p.substr) {
			if p.format == model.LowBitrateLossy && bitrateKbps >= n.highBitrateKbps {
				return model.HighBitrateLossy
			}
			return p.format
		}
	}
	if bitrateKbps > 0 {
		if bitrateKbps >= n.highBitrateKbps {
			return model.HighBitrateLossy
		}
		return model.LowBitrateLossy
	}
	return model.FormatUnknown
}

// generation extracts the lineage copy generation. An explicit generation
// field wins; otherwise the lineage text is scanned for "master" (gen 1)
// or a "<n> gen"/"gen <n>" phrase.
func (n *Normalizer) generation(raw model.RawRecord) (int, bool) {
	if raw.Generation > 0 {
		return raw.Generation, true
	}

	text := fold(raw.Lineage)
	if text == "" {
		return 0, false
	}
	if strings.Contains(text, "master") {
		return 1, true
	}

	idx := strings.Index(text, "gen")
	if idx < 0 {
		return 0, false
	}
	// Try the digits immediately after "gen N", then before "N gen" / "Nst gen".
	if g, ok := firstNumber(text[idx+len("gen"):]); ok {
		return g, true
	}
	if g, ok := lastNumber(text[:idx]); ok {
		return g, true
	}
	return 0, false
}

// fold lowercases and trims for case-insensitive substring matching.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func firstNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseNumber(s[start:i])
		}
		// Allow separators between "gen" and the digits.
		if r != ' ' && r != '-' && r != '.' && r != ':' {
			return 0, false
		}
	}
	if start >= 0 {
		return parseNumber(s[start:])
	}
	return 0, false
}

func lastNumber(s string) (int, bool) {
	end := -1
	for i := len(s) - 1; i >= 0; i-- {
		if unicode.IsDigit(rune(s[i])) {
			if end < 0 {
				end = i + 1
			}
			continue
		}
		if end >= 0 {
			return parseNumber(s[i+1 : end])
		}
		// Skip ordinal suffixes and separators, e.g. "1st gen".
		switch s[i] {
		case ' ', '-', 's', 't', 'n', 'd', 'r', 'h':
			continue
		default:
			return 0, false
		}
	}
	if end >= 0 {
		return parseNumber(s[:end])
	}
	return 0, false
}

func parseNumber(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
