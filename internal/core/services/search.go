package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driven"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driving"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService filters and paginates the published collection index.
type SearchService struct {
	store driven.CatalogStore
	log   *zap.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.CatalogStore, log *zap.Logger) *SearchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SearchService{
		store: store,
		log:   log,
	}
}

// Search filters the index by the criteria and returns one page of results.
// Criteria are normalized first, so out-of-range pages and unknown enum
// codes never produce an error.
func (s *SearchService) Search(
	ctx context.Context, criteria domain.SearchCriteria,
) (*domain.SearchResult, error) {
	criteria = criteria.Normalize()

	records, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	matched := filterByText(records, criteria)
	matched = filterByStatus(matched, criteria.InventoryStatus)

	totalCount := len(matched)
	page := pageSlice(matched, criteria.Page, criteria.PageSize)

	s.log.Debug("search executed",
		zap.Int("field", int(criteria.SearchField)),
		zap.Int("method", int(criteria.SearchMethod)),
		zap.Int("matched", totalCount),
		zap.Int("page", criteria.Page),
		zap.Int("returned", len(page)))

	return &domain.SearchResult{
		Collections: page,
		TotalCount:  totalCount,
		Page:        criteria.Page,
		PageSize:    criteria.PageSize,
		TotalPages:  totalPages(totalCount, criteria.PageSize),
	}, nil
}

// filterByText keeps records whose selected field matches the query.
// Index order is preserved; an empty query keeps everything.
func filterByText(records []domain.CollectionRecord, c domain.SearchCriteria) []domain.CollectionRecord {
	if c.SearchText == "" {
		return records
	}

	matched := make([]domain.CollectionRecord, 0, len(records))
	for i := range records {
		if recordMatches(&records[i], c) {
			matched = append(matched, records[i])
		}
	}
	return matched
}

// recordMatches applies the field selector and match method to one record.
func recordMatches(r *domain.CollectionRecord, c domain.SearchCriteria) bool {
	switch c.SearchField {
	case domain.FieldID:
		return c.SearchMethod.Matches(r.ID, c.SearchText)
	case domain.FieldName:
		return c.SearchMethod.Matches(r.Name, c.SearchText)
	case domain.FieldManagementCode:
		return c.SearchMethod.Matches(r.ManagementCode, c.SearchText)
	case domain.FieldCategory:
		return c.SearchMethod.Matches(r.Category, c.SearchText)
	case domain.FieldAnyTag:
		return c.SearchMethod.Matches(r.Tag1, c.SearchText) ||
			c.SearchMethod.Matches(r.Tag2, c.SearchText) ||
			c.SearchMethod.Matches(r.Tag3, c.SearchText)
	case domain.FieldTag1:
		return c.SearchMethod.Matches(r.Tag1, c.SearchText)
	case domain.FieldTag2:
		return c.SearchMethod.Matches(r.Tag2, c.SearchText)
	case domain.FieldTag3:
		return c.SearchMethod.Matches(r.Tag3, c.SearchText)
	case domain.FieldLocation:
		return c.SearchMethod.Matches(r.RealLocation, c.SearchText)
	default:
		for _, value := range r.TextFields() {
			if c.SearchMethod.Matches(value, c.SearchText) {
				return true
			}
		}
		return false
	}
}

// filterByStatus keeps records whose derived status equals the wanted one.
// A nil status keeps everything.
func filterByStatus(records []domain.CollectionRecord, status *domain.InventoryStatus) []domain.CollectionRecord {
	if status == nil {
		return records
	}

	matched := make([]domain.CollectionRecord, 0, len(records))
	for i := range records {
		if records[i].InventoryStatus == *status {
			matched = append(matched, records[i])
		}
	}
	return matched
}

// pageSlice returns the records for a 1-based page. A page past the end
// yields an empty slice, never an error.
func pageSlice(records []domain.CollectionRecord, page, pageSize int) []domain.CollectionRecord {
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []domain.CollectionRecord{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// totalPages is the ceiling of count/pageSize, with a floor of 1 so the
// pagination UI always has a last page to point at.
func totalPages(count, pageSize int) int {
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
