package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

func TestScanner_Scan(t *testing.T) {
	t.Run("one record per collection folder", func(t *testing.T) {
		root := t.TempDir()
		writeCollection(t, root, "A1", "Name,Red Box\nCategory,Tools\n")
		writeCollection(t, root, "B2", "Name,Blue Box\nCategory,Tools\n")

		scanner := NewScanner(root, zap.NewNop())
		records, err := scanner.Scan(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "A1", records[0].ID)
		assert.Equal(t, "B2", records[1].ID)
	})

	t.Run("order is lexical by folder name", func(t *testing.T) {
		root := t.TempDir()
		for _, id := range []string{"zulu", "alpha", "mike"} {
			writeCollection(t, root, id, "Name,"+id+"\n")
		}

		scanner := NewScanner(root, zap.NewNop())
		records, err := scanner.Scan(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "alpha", records[0].ID)
		assert.Equal(t, "mike", records[1].ID)
		assert.Equal(t, "zulu", records[2].ID)
	})

	t.Run("unparsable folder still indexed as stub", func(t *testing.T) {
		root := t.TempDir()
		writeCollection(t, root, "good", "Name,Good\n")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "broken"), 0o755))

		scanner := NewScanner(root, zap.NewNop())
		records, err := scanner.Scan(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "broken", records[0].ID)
		assert.Empty(t, records[0].Name)
		assert.Equal(t, domain.StatusNotSet, records[0].InventoryStatus)
		assert.Equal(t, "Good", records[1].Name)
	})

	t.Run("skips plain files and hidden directories", func(t *testing.T) {
		root := t.TempDir()
		writeCollection(t, root, "real", "Name,Real\n")
		require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

		scanner := NewScanner(root, zap.NewNop())
		records, err := scanner.Scan(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "real", records[0].ID)
	})

	t.Run("empty data root yields empty index", func(t *testing.T) {
		scanner := NewScanner(t.TempDir(), zap.NewNop())
		records, err := scanner.Scan(context.Background())

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing data root is a configuration error", func(t *testing.T) {
		scanner := NewScanner("/non/existent/path/12345", zap.NewNop())
		_, err := scanner.Scan(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidDataRoot)
	})

	t.Run("file as data root is a configuration error", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "notadir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		scanner := NewScanner(file, zap.NewNop())
		_, err := scanner.Scan(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidDataRoot)
	})

	t.Run("cancelled context aborts the scan", func(t *testing.T) {
		root := t.TempDir()
		writeCollection(t, root, "A1", "Name,Red Box\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		scanner := NewScanner(root, zap.NewNop())
		_, err := scanner.Scan(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
