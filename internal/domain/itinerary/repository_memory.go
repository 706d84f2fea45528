package itinerary

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	it        Itinerary
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryRepository creates an in-process itinerary store, used when no
// Redis URL is configured. Expiry is checked lazily on read.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *memoryRepository) Get(_ context.Context, sessionID string) (*Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		delete(r.entries, sessionID)
		return nil, ErrNotFound
	}
	it := entry.it
	return &it, nil
}

func (r *memoryRepository) Save(_ context.Context, it *Itinerary, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memoryEntry{it: *it}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.entries[it.SessionID] = entry
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}
