// Package memory provides the in-memory implementation of the catalog store.
package memory

import (
	"context"
	"sync/atomic"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// snapshot is one published generation of the index. It is never mutated
// after publish, so readers need no locking.
type snapshot struct {
	records []domain.CollectionRecord
	byID    map[string]int
}

// CatalogStore holds the current index snapshot behind an atomic pointer.
// A rebuild constructs the next snapshot fully off to the side and swaps
// the pointer; concurrent readers keep the generation they started with.
type CatalogStore struct {
	current atomic.Pointer[snapshot]
}

// NewCatalogStore creates a store with an empty published snapshot, so
// queries before the first build return empty results rather than errors.
func NewCatalogStore() *CatalogStore {
	s := &CatalogStore{}
	s.current.Store(newSnapshot(nil))
	return s
}

func newSnapshot(records []domain.CollectionRecord) *snapshot {
	snap := &snapshot{
		records: make([]domain.CollectionRecord, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(snap.records, records)
	for i := range snap.records {
		snap.byID[snap.records[i].ID] = i
	}
	return snap
}

// Replace publishes a new snapshot, discarding the previous one.
func (s *CatalogStore) Replace(_ context.Context, records []domain.CollectionRecord) error {
	s.current.Store(newSnapshot(records))
	return nil
}

// All returns a copy of every record in the snapshot's stable order.
func (s *CatalogStore) All(_ context.Context) ([]domain.CollectionRecord, error) {
	snap := s.current.Load()
	records := make([]domain.CollectionRecord, len(snap.records))
	copy(records, snap.records)
	return records, nil
}

// Get retrieves a record by collection ID.
func (s *CatalogStore) Get(_ context.Context, id string) (*domain.CollectionRecord, error) {
	snap := s.current.Load()
	i, ok := snap.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	record := snap.records[i]
	return &record, nil
}

// Count returns the number of records in the snapshot.
func (s *CatalogStore) Count(_ context.Context) (int, error) {
	return len(s.current.Load().records), nil
}
