package driving

import (
	"context"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

// SearchService answers filtered, paginated collection searches.
type SearchService interface {
	// Search filters the index by the criteria and returns one page of
	// results. Invalid criteria are normalized, never rejected; the
	// result is always well-formed, possibly empty.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}
