package store

import (
	"sync"

	"property-service/internal/model"
)

// MemoryStore holds the record in process memory. Used for tests and for
// the ephemeral demo mode. The backend is a selectable production option
// and requests arrive concurrently, so access is serialized; last write
// wins.
type MemoryStore struct {
	mu    sync.RWMutex
	state *model.AppState
}

// NewMemoryStore creates an in-memory store seeded with the given state
func NewMemoryStore(state *model.AppState) *MemoryStore {
	if state == nil {
		state = Seed()
	}
	return &MemoryStore{state: state}
}

// Load returns a copy of the held record so callers never mutate it in place
func (m *MemoryStore) Load() (*model.AppState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone(), nil
}

// Save replaces the held record
func (m *MemoryStore) Save(state *model.AppState) error {
	clone := state.Clone()
	m.mu.Lock()
	m.state = clone
	m.mu.Unlock()
	return nil
}
