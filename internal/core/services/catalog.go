package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driven"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes the collection index and owns rebuilds.
type CatalogService struct {
	scanner  driven.CatalogScanner
	store    driven.CatalogStore
	settings domain.ProjectSettings
	log      *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	scanner driven.CatalogScanner,
	store driven.CatalogStore,
	settings domain.ProjectSettings,
	log *zap.Logger,
) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{
		scanner:  scanner,
		store:    store,
		settings: settings,
		log:      log,
	}
}

// GetAll returns every record in the index's stable order.
func (s *CatalogService) GetAll(ctx context.Context) ([]domain.CollectionRecord, error) {
	return s.store.All(ctx)
}

// GetByID retrieves a single record, or domain.ErrNotFound.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.CollectionRecord, error) {
	return s.store.Get(ctx, id)
}

// Categories returns the distinct non-empty category values, sorted.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	seen := make(map[string]struct{})
	for i := range records {
		if records[i].Category != "" {
			seen[records[i].Category] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// Tags returns the distinct tag values across all three slots, excluding
// blanks and the unset sentinel, sorted.
func (s *CatalogService) Tags(ctx context.Context) ([]string, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	seen := make(map[string]struct{})
	for i := range records {
		for _, tag := range records[i].Tags() {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// Rebuild rescans the data root and atomically publishes the new index.
// The previous snapshot keeps serving readers until the swap; a failed
// scan leaves it untouched.
func (s *CatalogService) Rebuild(ctx context.Context) (int, error) {
	records, err := s.scanner.Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan data root: %w", err)
	}

	if err := s.store.Replace(ctx, records); err != nil {
		return 0, fmt.Errorf("publish index: %w", err)
	}

	s.log.Info("index rebuilt", zap.Int("collections", len(records)))
	return len(records), nil
}

// Settings returns the project configuration.
func (s *CatalogService) Settings() domain.ProjectSettings {
	return s.settings
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
