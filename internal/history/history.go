// Package history keeps a bounded, in-memory list of recent generation
// results per user. It is a presentation concern: nothing here is ever
// written to disk or the database, and the process forgetting it is fine.
package history

import (
	"sync"

	"github.com/passforge/passforge-go/internal/model"
)

// DefaultCapacity bounds how many results are remembered per user.
const DefaultCapacity = 20

// Store is a mutex-guarded map of per-user recent generations, newest
// first. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  map[int64][]model.HistoryEntry
}

// NewStore creates a Store remembering up to capacity entries per user.
// Non-positive capacities fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		entries:  make(map[int64][]model.HistoryEntry),
	}
}

// Push records a generation result for the user, evicting the oldest entry
// once the capacity is reached.
func (s *Store) Push(userID int64, entry model.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]model.HistoryEntry{entry}, s.entries[userID]...)
	if len(list) > s.capacity {
		list = list[:s.capacity]
	}
	s.entries[userID] = list
}

// List returns a copy of the user's remembered results, newest first.
func (s *Store) List(userID int64) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.HistoryEntry(nil), s.entries[userID]...)
}

// Clear forgets all remembered results for the user.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
}
