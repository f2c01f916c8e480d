package crec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

// Descriptor keys, lowercased before matching. The desktop tool writes
// them in mixed case.
const (
	keyProjectName     = "projectname"
	keyProjectLocation = "projectlocation"
	keyObjectNameLabel = "showobjectnamelabel"
	keyIDLabel         = "showidlabel"
	keyMCLabel         = "showmclabel"
	keyCategoryLabel   = "showcategorylabel"
	keyTag1Name        = "tag1name"
	keyTag2Name        = "tag2name"
	keyTag3Name        = "tag3name"
)

// LoadProject reads a project descriptor file and resolves it into
// settings. Unknown keys are ignored and missing label keys keep their
// defaults, but a descriptor without a data location is unusable and
// returns domain.ErrInvalidProject.
//
// A relative data location is resolved against the descriptor's own
// directory, so a project folder can be moved as a unit.
func LoadProject(path string, log *zap.Logger) (domain.ProjectSettings, error) {
	if log == nil {
		log = zap.NewNop()
	}

	settings := domain.DefaultProjectSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read project descriptor: %w", err)
	}

	var location string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, ",")
		if !found {
			log.Warn("skipping malformed descriptor line",
				zap.String("file", filepath.Base(path)))
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case keyProjectName:
			if value != "" {
				settings.ProjectName = value
			}
		case keyProjectLocation:
			location = value
		case keyObjectNameLabel:
			if value != "" {
				settings.Labels.ObjectName = value
			}
		case keyIDLabel:
			if value != "" {
				settings.Labels.UUID = value
			}
		case keyMCLabel:
			if value != "" {
				settings.Labels.ManagementCode = value
			}
		case keyCategoryLabel:
			if value != "" {
				settings.Labels.Category = value
			}
		case keyTag1Name:
			if value != "" {
				settings.Labels.Tag1 = value
			}
		case keyTag2Name:
			if value != "" {
				settings.Labels.Tag2 = value
			}
		case keyTag3Name:
			if value != "" {
				settings.Labels.Tag3 = value
			}
		}
	}

	if location == "" {
		return settings, fmt.Errorf("%w: no data location in %s",
			domain.ErrInvalidProject, filepath.Base(path))
	}
	if !filepath.IsAbs(location) {
		location = filepath.Join(filepath.Dir(path), location)
	}
	settings.DataRoot = location

	// A missing data directory is reported but not fatal: the folder may
	// appear later and a rebuild will pick it up.
	if info, statErr := os.Stat(location); statErr != nil || !info.IsDir() {
		log.Warn("project data root is not an existing directory",
			zap.String("dataRoot", location))
	}

	return settings, nil
}
