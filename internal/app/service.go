// Package app provides the selection service that ties normalization,
// scoring, and ranking together behind one API.
package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/internal/domain/normalize"
	"github.com/dapub1013/deadstream/internal/domain/profile"
	"github.com/dapub1013/deadstream/internal/domain/scoring"
	"github.com/dapub1013/deadstream/pkg/logger"
	"github.com/dapub1013/deadstream/pkg/metrics"
)

// Service selects the best recording of an event from a candidate set.
// All methods are safe for concurrent use; the only shared mutable state
// is the profile manager, which swaps profiles atomically.
type Service struct {
	normalizer *normalize.Normalizer
	scorer     *scoring.Scorer
	profiles   *profile.Manager
	logger     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithNormalizer sets a custom metadata normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Service) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithScorer sets a custom component scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithProfileManager sets the shared profile manager.
func WithProfileManager(m *profile.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.profiles = m
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default components: default vocabularies,
// default taper table, and the balanced preset active.
func New(opts ...Option) *Service {
	s := &Service{
		normalizer: normalize.New(),
		scorer:     scoring.New(),
		profiles:   profile.NewManager(profile.Default()),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// Profiles exposes the profile manager so callers can swap the active
// profile (atomic replace, never in-place mutation).
func (s *Service) Profiles() *profile.Manager {
	return s.profiles
}

// Normalize converts raw catalog records into recordings. Degraded fields
// are absorbed as unknown/absent values and logged at debug, never raised
// as errors.
func (s *Service) Normalize(ctx context.Context, raws []model.RawRecord) []model.Recording {
	recs := make([]model.Recording, len(raws))
	for i, raw := range raws {
		recs[i] = s.normalizer.Normalize(raw)
		if recs[i].Source == model.SourceUnknown || recs[i].Format == model.FormatUnknown {
			s.logger.Debug(ctx, "degraded metadata normalized to unknown",
				logger.String("identifier", raw.Identifier),
				logger.String("source", recs[i].Source.String()),
				logger.String("format", recs[i].Format.String()),
			)
		}
	}
	return recs
}

// SelectBest scores every candidate under the given profile and returns the
// full ranking, best first. Returns ErrNoCandidates for an empty set.
func (s *Service) SelectBest(ctx context.Context, candidates []model.Recording, p profile.Profile) (model.Ranking, error) {
	if len(candidates) == 0 {
		metrics.RecordSelectionError("no_candidates")
		return model.Ranking{}, ErrNoCandidates
	}

	requestID := uuid.New().String()

	entries := make([]model.RankedEntry, len(candidates))
	order := make(map[string]model.Recording, len(candidates))
	for i, rec := range candidates {
		entries[i] = model.RankedEntry{
			Identifier: rec.Identifier,
			Breakdown:  scoring.Aggregate(s.scorer.Score(rec), p),
		}
		order[rec.Identifier] = rec
	}
	metrics.RecordCandidatesScored(len(candidates))
	metrics.UpdateActiveCandidates(len(candidates))

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j], order)
	})

	ranking := model.Ranking{Entries: entries}
	if len(entries) > 1 {
		ranking.Margin = entries[0].Breakdown.Total - entries[1].Breakdown.Total
	}

	metrics.RecordSelection()
	metrics.ObserveWinningScore(entries[0].Breakdown.Total)
	metrics.ObserveMargin(ranking.Margin)

	s.logger.Info(ctx, "selected best recording",
		logger.String("request_id", requestID),
		logger.String("profile", p.Name()),
		logger.Int("candidates", len(candidates)),
		logger.String("winner", entries[0].Identifier),
		logger.Float64("total", entries[0].Breakdown.Total),
		logger.Float64("margin", ranking.Margin),
	)

	return ranking, nil
}

// SelectManual honors an explicit override verbatim: the chosen identifier
// is returned without scoring, or ErrUnknownSelection if absent.
func (s *Service) SelectManual(ctx context.Context, candidates []model.Recording, chosen string) (model.Recording, error) {
	for _, rec := range candidates {
		if rec.Identifier == chosen {
			metrics.RecordManualSelection()
			s.logger.Info(ctx, "manual selection honored",
				logger.String("identifier", chosen),
			)
			return rec, nil
		}
	}
	metrics.RecordSelectionError("unknown_selection")
	return model.Recording{}, fmt.Errorf("%w: %q", ErrUnknownSelection, chosen)
}

// Explain returns the full ranking with per-component breakdowns for every
// candidate. Identical ordering to SelectBest; intended for transparency
// surfaces such as the comparison CLI.
func (s *Service) Explain(ctx context.Context, candidates []model.Recording, p profile.Profile) (model.Ranking, error) {
	return s.SelectBest(ctx, candidates, p)
}

// SelectBestRaw normalizes raw records and then selects, for callers that
// sit directly on catalog output.
func (s *Service) SelectBestRaw(ctx context.Context, raws []model.RawRecord, p profile.Profile) (model.Ranking, error) {
	return s.SelectBest(ctx, s.Normalize(ctx, raws), p)
}

// SelectManualRaw normalizes raw records and then applies a manual override.
func (s *Service) SelectManualRaw(ctx context.Context, raws []model.RawRecord, chosen string) (model.Recording, error) {
	return s.SelectManual(ctx, s.Normalize(ctx, raws), chosen)
}

// less orders ranked entries: total score descending, then review count
// descending, then source priority, then identifier ascending. The chain is
// total, so identical inputs always produce identical rankings.
func less(a, b model.RankedEntry, recs map[string]model.Recording) bool {
	if a.Breakdown.Total != b.Breakdown.Total {
		return a.Breakdown.Total > b.Breakdown.Total
	}
	ra, rb := recs[a.Identifier], recs[b.Identifier]
	if ra.NumReviews != rb.NumReviews {
		return ra.NumReviews > rb.NumReviews
	}
	if ra.Source != rb.Source {
		return ra.Source.Priority() < rb.Source.Priority()
	}
	return a.Identifier < b.Identifier
}
