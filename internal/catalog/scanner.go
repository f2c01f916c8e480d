package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driven"
)

// Ensure Scanner implements the interface.
var _ driven.CatalogScanner = (*Scanner)(nil)

// Scanner builds collection records from the data root directory.
type Scanner struct {
	dataRoot string
	log      *zap.Logger
}

// NewScanner creates a scanner for the given data root.
func NewScanner(dataRoot string, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		dataRoot: dataRoot,
		log:      log,
	}
}

// Scan lists the immediate subdirectories of the data root and parses one
// record per directory, in lexical name order. Folders whose metadata fails
// to parse still contribute defaulted records, so the record count always
// equals the number of collection folders.
func (s *Scanner) Scan(ctx context.Context) ([]domain.CollectionRecord, error) {
	if err := s.validateRoot(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dataRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidDataRoot, s.dataRoot, err)
	}

	records := make([]domain.CollectionRecord, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		record, parseErr := ParseCollection(filepath.Join(s.dataRoot, entry.Name()))
		if parseErr != nil {
			// Recovered locally: the stub record still goes into the index.
			s.log.Warn("collection metadata unreadable, indexing defaults",
				zap.String("collection", entry.Name()),
				zap.Error(parseErr))
		}
		records = append(records, record)
	}

	s.log.Info("data root scanned",
		zap.String("dataRoot", s.dataRoot),
		zap.Int("collections", len(records)))

	return records, nil
}

// validateRoot checks the data root exists and is a directory.
func (s *Scanner) validateRoot() error {
	info, err := os.Stat(s.dataRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", domain.ErrInvalidDataRoot, s.dataRoot)
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidDataRoot, s.dataRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidDataRoot, s.dataRoot)
	}
	return nil
}
