package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory snapshot store. It's the default store and
// suitable for development and single-server deployments.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
	closed    bool
}

// NewMemoryStore creates a new in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string]Snapshot),
	}
}

// Save stores a snapshot, overwriting any previous one with the same ID.
func (m *MemoryStore) Save(ctx context.Context, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}
	m.snapshots[snap.ID] = *snap
	return nil
}

// Load retrieves a snapshot if it exists.
func (m *MemoryStore) Load(ctx context.Context, id string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed{}
	}
	snap, ok := m.snapshots[id]
	if !ok {
		return nil, nil
	}
	out := snap
	return &out, nil
}

// Delete removes a snapshot.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}
	delete(m.snapshots, id)
	return nil
}

// Close marks the store as closed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
