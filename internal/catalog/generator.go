package catalog

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/pkg/logger"
)

// Constants for random value generation.
const (
	randomFloatDivisor = 1000000
	ratingMin          = 2.0
	ratingRange        = 3.0
	maxReviews         = 200
	maxGeneration      = 4
	startYear          = 1968
	yearRange          = 28
)

// Raw field pools the generator draws from, deliberately messy: the point
// of a synthetic catalog is exercising the normalizer's vocabularies.
var (
	sourcePool = []string{ //nolint:gochecknoglobals // fixture pool
		"SBD", "Soundboard master", "MTX blend", "Matrix", "AUD",
		"audience tape", "FM broadcast", "fm", "unknown rig", "",
	}
	formatPool = []string{ //nolint:gochecknoglobals // fixture pool
		"FLAC", "flac16", "SHN", "MP3 320", "mp3", "aac", "ogg vbr", "",
	}
	lineagePool = []string{ //nolint:gochecknoglobals // fixture pool
		"master reel", "1st gen cassette", "gen 2 > DAT", "3rd gen", "",
	}
	taperPool = []string{ //nolint:gochecknoglobals // fixture pool
		"Charlie Miller", "Betty Cantor", "Mike Millard", "anonymous", "",
	}
)

// getRandomFloat returns a random float64 in [0.0, 1.0) using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func pick(pool []string) string {
	return pool[int(getRandomFloat()*float64(len(pool)))%len(pool)]
}

// Generate produces a synthetic catalog of numEvents events with up to
// recordingsPerEvent candidate recordings each, for exercising the
// comparison tool against realistic, sparsely annotated metadata.
func Generate(ctx context.Context, numEvents, recordingsPerEvent int) []Event {
	logger.Get().Info(ctx, "generating synthetic catalog",
		logger.Int("events", numEvents),
		logger.Int("recordingsPerEvent", recordingsPerEvent),
	)

	events := make([]Event, numEvents)
	for i := range events {
		year := startYear + int(getRandomFloat()*yearRange)
		month := 1 + int(getRandomFloat()*12)%12
		day := 1 + int(getRandomFloat()*28)%28
		ev := Event{ID: fmt.Sprintf("%04d-%02d-%02d", year, month, day)}

		n := 1 + int(getRandomFloat()*float64(recordingsPerEvent))%recordingsPerEvent
		for j := 0; j < n; j++ {
			rec := model.RawRecord{
				Identifier: uuid.New().String(),
				Source:     pick(sourcePool),
				Format:     pick(formatPool),
				Lineage:    pick(lineagePool),
				Taper:      pick(taperPool),
			}
			// Roughly a third of recordings carry community reviews.
			if getRandomFloat() < 0.35 {
				rating := ratingMin + getRandomFloat()*ratingRange
				rec.AvgRating = &rating
				rec.NumReviews = int(getRandomFloat() * maxReviews)
			}
			if getRandomFloat() < 0.2 {
				rec.Generation = 1 + int(getRandomFloat()*maxGeneration)%maxGeneration
			}
			ev.Records = append(ev.Records, rec)
		}
		events[i] = ev
	}

	return events
}
