package listings

import (
	"context"
	"sync"
)

// MemorySource is an in-memory Source used in tests and offline tooling.
type MemorySource struct {
	mu       sync.RWMutex
	listings map[string]Listing
}

// NewMemorySource creates a MemorySource seeded with the given listings.
func NewMemorySource(seed ...Listing) *MemorySource {
	s := &MemorySource{listings: make(map[string]Listing, len(seed))}
	for _, l := range seed {
		s.listings[l.Hex()] = l
	}
	return s
}

// Put adds or replaces a listing.
func (s *MemorySource) Put(l Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.Hex()] = l
}

func (s *MemorySource) FindAll(_ context.Context) ([]Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, l)
	}
	return out, nil
}

func (s *MemorySource) FindByID(_ context.Context, id string) (*Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}
