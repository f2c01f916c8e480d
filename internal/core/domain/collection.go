package domain

import "strings"

// TagUnsetSentinel is the placeholder the external cataloguing tool writes
// into a tag slot it is not using. The tool pads it with spaces (" - "), so
// comparisons are done on the trimmed value.
const TagUnsetSentinel = "-"

// CollectionRecord represents one catalogued item. Each record is backed by
// a single subdirectory of the project data root; ID is always the directory
// name so file-serving paths map 1:1 to records.
//
// The JSON field names mirror the wire format consumed by the browser UI.
type CollectionRecord struct {
	// ID is the collection folder name and the unique key of the record.
	ID string `json:"collectionID"`

	// Name is the human-readable object name.
	Name string `json:"collectionName"`

	// ManagementCode is the operator-assigned management code.
	ManagementCode string `json:"collectionMC"`

	// Category is the classification assigned by the cataloguing tool.
	Category string `json:"collectionCategory"`

	// Tag1..Tag3 are free-form tag slots. A value that trims to
	// TagUnsetSentinel means the slot is unused.
	Tag1 string `json:"collectionTag1"`
	Tag2 string `json:"collectionTag2"`
	Tag3 string `json:"collectionTag3"`

	// RegistrationDate is kept as the free-form string the tool wrote.
	// It is never parsed as a date.
	RegistrationDate string `json:"collectionRegistrationDate"`

	// RealLocation is the physical storage location.
	RealLocation string `json:"collectionRealLocation"`

	// Comment is an optional multi-line note.
	Comment string `json:"comment"`

	// Inventory thresholds. Nil means the value was not recorded.
	CurrentInventory *int `json:"collectionCurrentInventory"`
	SafetyStock      *int `json:"collectionSafetyStock"`
	OrderPoint       *int `json:"collectionOrderPoint"`
	MaxStock         *int `json:"collectionMaxStock"`

	// InventoryStatus is derived from the thresholds above at build time.
	InventoryStatus InventoryStatus `json:"collectionInventoryStatus"`

	// ImageFiles lists file names under the collection's pictures folder.
	ImageFiles []string `json:"imageFiles"`

	// OtherFiles lists file names under the collection's data folder.
	OtherFiles []string `json:"otherFiles"`
}

// IsTagSet reports whether a tag slot holds a real value rather than
// blank space or the unset sentinel.
func IsTagSet(tag string) bool {
	trimmed := strings.TrimSpace(tag)
	return trimmed != "" && trimmed != TagUnsetSentinel
}

// Tags returns the values of the tag slots that are actually set.
func (r *CollectionRecord) Tags() []string {
	var tags []string
	for _, tag := range []string{r.Tag1, r.Tag2, r.Tag3} {
		if IsTagSet(tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// TextFields returns every textual field a field-unscoped search compares
// against: id, name, management code, category, the three tags, and location.
func (r *CollectionRecord) TextFields() []string {
	return []string{
		r.ID,
		r.Name,
		r.ManagementCode,
		r.Category,
		r.Tag1,
		r.Tag2,
		r.Tag3,
		r.RealLocation,
	}
}
