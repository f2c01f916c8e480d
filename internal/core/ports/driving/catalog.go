package driving

import (
	"context"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

// CatalogService exposes the collection index to external actors.
type CatalogService interface {
	// GetAll returns every record in the index's stable order.
	GetAll(ctx context.Context) ([]domain.CollectionRecord, error)

	// GetByID retrieves a single record.
	// Returns domain.ErrNotFound when no such record exists.
	GetByID(ctx context.Context, id string) (*domain.CollectionRecord, error)

	// Categories returns the distinct non-empty category values,
	// sorted alphabetically.
	Categories(ctx context.Context) ([]string, error)

	// Tags returns the distinct tag values across all three tag slots,
	// excluding blanks and the unset sentinel, sorted alphabetically.
	Tags(ctx context.Context) ([]string, error)

	// Rebuild rescans the data root and atomically publishes the new
	// index. Returns the number of records in the published snapshot.
	Rebuild(ctx context.Context) (int, error)

	// Settings returns the project configuration (name, labels).
	Settings() domain.ProjectSettings
}
