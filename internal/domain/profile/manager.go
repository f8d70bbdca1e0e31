package profile

import "sync/atomic"

// Manager holds the currently active profile for callers that want a shared
// preference rather than passing a profile per call.
//
// The active profile is swapped whole via an atomic pointer, never mutated
// in place, so a selection already in flight keeps the snapshot it read.
type Manager struct {
	active atomic.Pointer[Profile]
}

// NewManager creates a Manager with the given initial profile.
func NewManager(initial Profile) *Manager {
	m := &Manager{}
	m.active.Store(&initial)
	return m
}

// Active returns a snapshot of the current profile.
func (m *Manager) Active() Profile {
	return *m.active.Load()
}

// Swap atomically replaces the active profile. An invalid replacement is
// rejected with ErrInvalidProfile and the previous profile stays active.
func (m *Manager) Swap(next Profile) error {
	// Re-validate: a zero Profile or one assembled outside New must not
	// become active.
	validated, err := New(next.Name(), next.weights)
	if err != nil {
		return err
	}
	m.active.Store(&validated)
	return nil
}

// SwapWeights validates the given weights as a custom profile and makes it
// active on success.
func (m *Manager) SwapWeights(weights map[string]float64) error {
	p, err := New(NameCustom, weights)
	if err != nil {
		return err
	}
	m.active.Store(&p)
	return nil
}
