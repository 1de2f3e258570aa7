package memory

import (
	"context"
	"sync"

	"bitbucket.org/sotavant/spicerack-skill/internal/store"
)

var _ store.Store = (*Store)(nil)

type key struct {
	owner string
	spice string
}

// Store is an in-process store.Store. Records live as long as the process.
type Store struct {
	mu      sync.RWMutex
	records map[key]store.SpiceRecord
}

func New() *Store {
	return &Store{records: make(map[key]store.SpiceRecord)}
}

func (s *Store) GetSpice(_ context.Context, ownerID, spiceName string) (*store.SpiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key{owner: ownerID, spice: spiceName}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &rec, nil
}

func (s *Store) PutSpice(_ context.Context, rec store.SpiceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key{owner: rec.OwnerID, spice: rec.SpiceName}] = rec
	return nil
}

// EnsureTable is a no-op: the map exists from construction.
func (s *Store) EnsureTable(context.Context) error {
	return nil
}
