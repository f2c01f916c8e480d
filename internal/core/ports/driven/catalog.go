package driven

import (
	"context"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

// CatalogScanner builds collection records from the project data root.
// A scan reads every collection folder in full; it is the only place the
// core touches the filesystem.
type CatalogScanner interface {
	// Scan lists the immediate subdirectories of the data root and parses
	// one record per directory, in lexical directory-name order. Folders
	// that fail to parse contribute defaulted records rather than being
	// dropped. A missing or unreadable data root is the only error.
	Scan(ctx context.Context) ([]domain.CollectionRecord, error)
}

// CatalogStore holds the published index of collection records.
//
// Implementations must treat a published index as an immutable snapshot:
// Replace swaps the whole snapshot atomically, readers never observe a
// partially built index, and records returned to callers are copies.
type CatalogStore interface {
	// Replace publishes a new snapshot, discarding the previous one.
	Replace(ctx context.Context, records []domain.CollectionRecord) error

	// All returns every record in the snapshot's stable order.
	All(ctx context.Context) ([]domain.CollectionRecord, error)

	// Get retrieves a record by collection ID.
	// Returns domain.ErrNotFound when no such record exists.
	Get(ctx context.Context, id string) (*domain.CollectionRecord, error)

	// Count returns the number of records in the snapshot.
	Count(ctx context.Context) (int, error)
}
