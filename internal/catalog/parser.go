package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

// Collection folder layout written by the external cataloguing tool.
const (
	MetadataFileName  = "index.txt"
	CommentFileName   = "comment.txt"
	PicturesDirName   = "pictures"
	DataDirName       = "data"
	SystemDirName     = "SystemData"
	ThumbnailFileName = "Thumbnail.png"
)

// ParseCollection reads one collection folder into a record. The record ID
// is always the folder name. Parse failures never escape this boundary: a
// missing or malformed metadata file yields a defaulted record, and the
// returned error exists only so the caller can log what was skipped.
func ParseCollection(folder string) (domain.CollectionRecord, error) {
	record := domain.CollectionRecord{
		ID:         filepath.Base(folder),
		ImageFiles: []string{},
		OtherFiles: []string{},
	}

	err := parseMetadata(filepath.Join(folder, MetadataFileName), &record)

	if comment, readErr := os.ReadFile(filepath.Join(folder, CommentFileName)); readErr == nil {
		record.Comment = strings.TrimRight(string(comment), "\r\n")
	}

	record.ImageFiles = listFiles(filepath.Join(folder, PicturesDirName))
	record.OtherFiles = listFiles(filepath.Join(folder, DataDirName))

	record.InventoryStatus = domain.EvaluateInventoryStatus(
		record.CurrentInventory, record.SafetyStock, record.OrderPoint, record.MaxStock)

	return record, err
}

// parseMetadata fills record fields from index.txt. The file format matches
// the project descriptor: one "key,value" pair per line, split on the first
// comma. Unknown keys and malformed lines are skipped.
func parseMetadata(path string, record *domain.CollectionRecord) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read metadata: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, ",")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			record.Name = value
		case "mc":
			record.ManagementCode = value
		case "category":
			record.Category = value
		case "tag1":
			record.Tag1 = value
		case "tag2":
			record.Tag2 = value
		case "tag3":
			record.Tag3 = value
		case "registrationdate":
			record.RegistrationDate = value
		case "location":
			record.RealLocation = value
		case "currentinventory":
			record.CurrentInventory = parseCount(value)
		case "safetystock":
			record.SafetyStock = parseCount(value)
		case "orderpoint":
			record.OrderPoint = parseCount(value)
		case "maxstock":
			record.MaxStock = parseCount(value)
		}
	}

	return nil
}

// parseCount parses an inventory number. Blank or non-numeric values mean
// "not recorded" and map to nil rather than zero.
func parseCount(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

// listFiles returns the file names directly under dir, skipping
// subdirectories and system files. os.ReadDir already sorts by name.
// A missing folder yields an empty list, not an error.
func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || isSystemFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}

// isSystemFile reports whether a file name is OS or tool noise that should
// never appear in a record's file list.
func isSystemFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch strings.ToLower(name) {
	case "thumbs.db", "desktop.ini":
		return true
	}
	return false
}
