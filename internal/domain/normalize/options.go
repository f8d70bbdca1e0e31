package normalize

import "github.com/dapub1013/deadstream/internal/domain/model"

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithSourcePattern prepends a source vocabulary entry. Prepended patterns
// take priority over the built-in vocabulary.
func WithSourcePattern(substr string, source model.SourceType) Option {
	return func(n *Normalizer) {
		if substr != "" {
			n.sourceVocab = append([]sourcePattern{{fold(substr), source}}, n.sourceVocab...)
		}
	}
}

// WithFormatPattern prepends a format vocabulary entry.
func WithFormatPattern(substr string, format model.Format) Option {
	return func(n *Normalizer) {
		if substr != "" {
			n.formatVocab = append([]formatPattern{{fold(substr), format}}, n.formatVocab...)
		}
	}
}

// WithHighBitrateThreshold sets the kbps cutoff between high and low
// bitrate lossy encodings.
func WithHighBitrateThreshold(kbps int) Option {
	return func(n *Normalizer) {
		if kbps > 0 {
			n.highBitrateKbps = kbps
		}
	}
}
