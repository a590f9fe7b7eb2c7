// Package cache holds the process-wide listing store that aggregation
// results are written into and detail lookups read from. The store is an
// explicit dependency injected into its consumers, never ambient state, so
// tests get a fresh instance each.
package cache

import (
	"sync"

	"pgfinder/server/internal/models"
)

// Store is a mutex-guarded keyed listing store. Writes race under
// last-writer-wins-by-ID semantics across overlapping requests, which is
// fine because entries are immutable value records.
type Store struct {
	mu       sync.RWMutex
	listings map[string]models.Listing
}

func NewStore() *Store {
	return &Store{listings: make(map[string]models.Listing)}
}

// Put stores one listing, overwriting any previous entry with the same ID.
func (s *Store) Put(listing models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[listing.ID] = listing
}

// PutAll stores a batch of listings under one lock acquisition.
func (s *Store) PutAll(listings []models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range listings {
		s.listings[l.ID] = l
	}
}

// Get returns the listing with the given ID, if present.
func (s *Store) Get(id string) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[id]
	return l, ok
}

// All returns a snapshot of every cached listing, in no particular order.
func (s *Store) All() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, l)
	}
	return out
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = make(map[string]models.Listing)
}

// Len returns the number of cached listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}
