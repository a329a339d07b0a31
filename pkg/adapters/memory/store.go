package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/dectab/pkg/domain"
)

// Store implements ports.TableStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.StoredTable
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.StoredTable),
	}
}

// Save keeps a deep copy of the table.
func (s *Store) Save(ctx context.Context, table *domain.StoredTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	copied := table.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[table.ID] = copied
	return nil
}

// Load returns a copy so callers cannot mutate the stored table.
func (s *Store) Load(ctx context.Context, id string) (*domain.StoredTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.data[id]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	return table.Clone(), nil
}

// Delete removes the table.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return domain.ErrTableNotFound
	}
	delete(s.data, id)
	return nil
}

// List returns the stored table IDs in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
