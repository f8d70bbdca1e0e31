// Package catalog is the boundary adapter for already-fetched recording
// metadata. It loads raw records from an archive dump on disk and serves
// them per event; it performs no network fetching and no persistence.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/dapub1013/deadstream/internal/domain/model"
)

// Event groups the raw recording records known for one live event,
// typically keyed by date ("1977-05-08").
type Event struct {
	ID      string            `json:"id" yaml:"id"`
	Records []model.RawRecord `json:"recordings" yaml:"recordings"`
}

// Store provides read access to the loaded catalog.
type Store interface {
	// Event returns the records for one event.
	// Returns ErrEventNotFound if the event is unknown.
	Event(ctx context.Context, id string) (Event, error)

	// EventIDs returns all known event ids in lexicographic order.
	EventIDs(ctx context.Context) []string

	// Count returns the number of events in the catalog.
	Count(ctx context.Context) int
}

// memoryStore implements Store over a map built at load time. Read-only
// after construction, so safe for concurrent use without locking.
type memoryStore struct {
	events map[string]Event
}

// NewStore builds a Store from loaded events. Duplicate recording
// identifiers within an event collapse to the first occurrence; duplicate
// event ids merge their record lists.
func NewStore(events []Event) Store {
	byID := make(map[string]Event, len(events))
	for _, ev := range events {
		merged := byID[ev.ID]
		merged.ID = ev.ID
		seen := make(map[string]bool, len(merged.Records)+len(ev.Records))
		for _, r := range merged.Records {
			seen[r.Identifier] = true
		}
		for _, r := range ev.Records {
			if r.Identifier == "" || seen[r.Identifier] {
				continue
			}
			seen[r.Identifier] = true
			merged.Records = append(merged.Records, r)
		}
		byID[ev.ID] = merged
	}
	return &memoryStore{events: byID}
}

func (s *memoryStore) Event(_ context.Context, id string) (Event, error) {
	ev, ok := s.events[id]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrEventNotFound, id)
	}
	return ev, nil
}

func (s *memoryStore) EventIDs(_ context.Context) []string {
	ids := make([]string, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *memoryStore) Count(_ context.Context) int {
	return len(s.events)
}
