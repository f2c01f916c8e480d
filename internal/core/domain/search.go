package domain

import "strings"

// SearchField selects which record field a text query compares against.
// The integer codes match the select-box values in the browser UI.
type SearchField int

const (
	// FieldAll matches when any textual field matches.
	FieldAll SearchField = 0
	// FieldID matches the collection ID (folder name).
	FieldID SearchField = 1
	// FieldName matches the object name.
	FieldName SearchField = 2
	// FieldManagementCode matches the management code.
	FieldManagementCode SearchField = 3
	// FieldCategory matches the category.
	FieldCategory SearchField = 4
	// FieldAnyTag matches when any of the three tag slots matches.
	FieldAnyTag SearchField = 5
	// FieldTag1, FieldTag2, FieldTag3 match a single tag slot.
	FieldTag1 SearchField = 6
	FieldTag2 SearchField = 7
	FieldTag3 SearchField = 8
	// FieldLocation matches the physical storage location.
	FieldLocation SearchField = 9
)

// IsValid reports whether the field code is one of the known selectors.
func (f SearchField) IsValid() bool {
	return f >= FieldAll && f <= FieldLocation
}

// SearchMethod selects how a query string is compared against a field value.
type SearchMethod int

const (
	// MethodPartial matches on substring containment.
	MethodPartial SearchMethod = 0
	// MethodPrefix matches when the value starts with the query.
	MethodPrefix SearchMethod = 1
	// MethodSuffix matches when the value ends with the query.
	MethodSuffix SearchMethod = 2
	// MethodExact matches on full equality.
	MethodExact SearchMethod = 3
)

// IsValid reports whether the method code is one of the known methods.
func (m SearchMethod) IsValid() bool {
	return m >= MethodPartial && m <= MethodExact
}

// Matches compares value against query using the method, case-insensitively.
// An empty query matches everything.
func (m SearchMethod) Matches(value, query string) bool {
	if query == "" {
		return true
	}
	value = strings.ToLower(value)
	query = strings.ToLower(query)
	switch m {
	case MethodPrefix:
		return strings.HasPrefix(value, query)
	case MethodSuffix:
		return strings.HasSuffix(value, query)
	case MethodExact:
		return value == query
	default:
		return strings.Contains(value, query)
	}
}

// Pagination defaults and bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchCriteria describes one search request. A criteria value is
// immutable once constructed; Normalize returns a corrected copy rather
// than mutating in place.
type SearchCriteria struct {
	// SearchText is the free-text query. Empty skips text filtering.
	SearchText string

	// SearchField selects the field(s) to compare.
	SearchField SearchField

	// SearchMethod selects the comparison method.
	SearchMethod SearchMethod

	// InventoryStatus, when non-nil, keeps only records whose derived
	// status equals this value.
	InventoryStatus *InventoryStatus

	// Page is 1-based.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// Normalize clamps out-of-range values and falls back to defaults for
// unknown enum codes. Invalid criteria are corrected, never rejected.
func (c SearchCriteria) Normalize() SearchCriteria {
	if !c.SearchField.IsValid() {
		c.SearchField = FieldAll
	}
	if !c.SearchMethod.IsValid() {
		c.SearchMethod = MethodPartial
	}
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	return c
}

// SearchResult is one page of matching records plus the counts the
// pagination UI needs.
type SearchResult struct {
	Collections []CollectionRecord `json:"collections"`
	TotalCount  int                `json:"totalCount"`
	Page        int                `json:"page"`
	PageSize    int                `json:"pageSize"`
	TotalPages  int                `json:"totalPages"`
}
