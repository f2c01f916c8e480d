package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSearchMethod_Matches tests the four comparison methods.
func TestSearchMethod_Matches(t *testing.T) {
	tests := []struct {
		name     string
		method   SearchMethod
		value    string
		query    string
		expected bool
	}{
		{"partial hit", MethodPartial, "Red Box", "box", true},
		{"partial miss", MethodPartial, "Red Box", "crate", false},
		{"partial case-insensitive", MethodPartial, "RED BOX", "red", true},
		{"prefix hit", MethodPrefix, "Red Box", "red", true},
		{"prefix miss", MethodPrefix, "Red Box", "box", false},
		{"suffix hit", MethodSuffix, "Red Box", "BOX", true},
		{"suffix miss", MethodSuffix, "Red Box", "red", false},
		{"exact hit", MethodExact, "Red Box", "red box", true},
		{"exact miss", MethodExact, "Red Box", "red", false},
		{"empty query matches", MethodExact, "anything", "", true},
		{"empty value partial miss", MethodPartial, "", "x", false},
		{"unicode partial", MethodPartial, "木製の箱", "の箱", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.method.Matches(tt.value, tt.query))
		})
	}
}

// TestSearchCriteria_Normalize tests clamping and enum fallback.
func TestSearchCriteria_Normalize(t *testing.T) {
	t.Run("defaults applied to zero value", func(t *testing.T) {
		c := SearchCriteria{}.Normalize()

		assert.Equal(t, FieldAll, c.SearchField)
		assert.Equal(t, MethodPartial, c.SearchMethod)
		assert.Equal(t, 1, c.Page)
		assert.Equal(t, DefaultPageSize, c.PageSize)
	})

	t.Run("negative page clamped", func(t *testing.T) {
		c := SearchCriteria{Page: -5, PageSize: 10}.Normalize()

		assert.Equal(t, 1, c.Page)
		assert.Equal(t, 10, c.PageSize)
	})

	t.Run("oversized page size clamped", func(t *testing.T) {
		c := SearchCriteria{Page: 1, PageSize: 10000}.Normalize()

		assert.Equal(t, MaxPageSize, c.PageSize)
	})

	t.Run("unknown enums fall back", func(t *testing.T) {
		c := SearchCriteria{
			SearchField:  SearchField(42),
			SearchMethod: SearchMethod(-1),
			Page:         2,
			PageSize:     30,
		}.Normalize()

		assert.Equal(t, FieldAll, c.SearchField)
		assert.Equal(t, MethodPartial, c.SearchMethod)
		assert.Equal(t, 2, c.Page)
		assert.Equal(t, 30, c.PageSize)
	})

	t.Run("valid criteria untouched", func(t *testing.T) {
		status := StatusStockOut
		c := SearchCriteria{
			SearchText:      "box",
			SearchField:     FieldName,
			SearchMethod:    MethodPrefix,
			InventoryStatus: &status,
			Page:            3,
			PageSize:        50,
		}
		got := c.Normalize()

		assert.Equal(t, c, got)
	})
}

// TestIsTagSet tests sentinel handling.
func TestIsTagSet(t *testing.T) {
	tests := []struct {
		tag      string
		expected bool
	}{
		{"tools", true},
		{"", false},
		{"   ", false},
		{"-", false},
		{" - ", false},
		{"- extra", true},
		{"a-b", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTagSet(tt.tag))
		})
	}
}

// TestCollectionRecord_Tags tests that only set tag slots are returned.
func TestCollectionRecord_Tags(t *testing.T) {
	r := CollectionRecord{Tag1: "wood", Tag2: " - ", Tag3: "fragile"}

	assert.Equal(t, []string{"wood", "fragile"}, r.Tags())

	empty := CollectionRecord{Tag1: " - ", Tag2: "", Tag3: "-"}
	assert.Empty(t, empty.Tags())
}

// TestCollectionRecord_TextFields tests the field set an unscoped search uses.
func TestCollectionRecord_TextFields(t *testing.T) {
	r := CollectionRecord{
		ID:             "A1",
		Name:           "Red Box",
		ManagementCode: "MC-1",
		Category:       "Tools",
		Tag1:           "wood",
		Tag2:           "red",
		Tag3:           " - ",
		RealLocation:   "Shelf 3",
	}

	fields := r.TextFields()
	assert.Len(t, fields, 8)
	assert.Contains(t, fields, "A1")
	assert.Contains(t, fields, "Shelf 3")
}
