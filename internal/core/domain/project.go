package domain

// FieldLabels holds the display names a project assigns to its custom
// fields. Labels are presentation-only; they never affect matching.
type FieldLabels struct {
	ObjectName     string
	UUID           string
	ManagementCode string
	Category       string
	Tag1           string
	Tag2           string
	Tag3           string
}

// ProjectSettings is the resolved content of a project descriptor file:
// where the collection folders live and how to label the custom fields.
type ProjectSettings struct {
	// ProjectName is the display name of the catalogue.
	ProjectName string

	// DataRoot is the directory containing the collection folders.
	DataRoot string

	// Labels are the display names for the record fields.
	Labels FieldLabels
}

// DefaultProjectSettings returns the settings used when the descriptor
// omits a value. These match the defaults the cataloguing tool assumes.
func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		ProjectName: "Kuradex Project",
		Labels: FieldLabels{
			ObjectName:     "Name",
			UUID:           "UUID",
			ManagementCode: "MC",
			Category:       "Category",
			Tag1:           "Tag 1",
			Tag2:           "Tag 2",
			Tag3:           "Tag 3",
		},
	}
}
