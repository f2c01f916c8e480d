package rest

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/catalog"
	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/logger"
)

// maxPathComponentLen bounds any single path component taken from a URL.
const maxPathComponentLen = 255

// collectionIDPattern is the shape of a valid collection folder name.
// Anything else never reaches the filesystem.
var collectionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateCollectionID(id string) error {
	if len(id) > maxPathComponentLen || !collectionIDPattern.MatchString(id) {
		return fmt.Errorf("%w: collection id", domain.ErrUnsafePathComponent)
	}
	return nil
}

func validateFileName(name string) error {
	switch {
	case name == "" || len(name) > maxPathComponentLen:
		return fmt.Errorf("%w: file name length", domain.ErrUnsafePathComponent)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: parent reference", domain.ErrUnsafePathComponent)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: separator in name", domain.ErrUnsafePathComponent)
	case name != filepath.Base(name):
		return fmt.Errorf("%w: not a plain name", domain.ErrUnsafePathComponent)
	}
	return nil
}

// resolveCollectionFile validates every component and confirms the joined
// path still sits under the data root.
func resolveCollectionFile(dataRoot, collectionID string, subPath []string) (string, error) {
	if err := validateCollectionID(collectionID); err != nil {
		return "", err
	}
	for _, component := range subPath {
		if err := validateFileName(component); err != nil {
			return "", err
		}
	}

	parts := append([]string{dataRoot, collectionID}, subPath...)
	path := filepath.Join(parts...)

	root := filepath.Clean(dataRoot)
	if rel, err := filepath.Rel(root, path); err != nil ||
		rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: escapes data root", domain.ErrUnsafePathComponent)
	}
	return path, nil
}

// serveCollectionFile streams a file from the collection folder with
// caching headers. Every failure mode is a plain 404 so probing reveals
// nothing about the disk layout.
func (s *Server) serveCollectionFile(c *gin.Context, collectionID string, subPath ...string) {
	path, err := resolveCollectionFile(s.catalog.Settings().DataRoot, collectionID, subPath)
	if err != nil {
		s.log.Debug("rejected file request",
			zap.String("collection", logger.Sanitize(collectionID)),
			zap.Error(err))
		errorResponse(c, http.StatusNotFound, "file not found")
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		errorResponse(c, http.StatusNotFound, "file not found")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.File(path)
}

func (s *Server) handleThumbnail(c *gin.Context) {
	s.serveCollectionFile(c, c.Param("collectionId"),
		catalog.SystemDirName, catalog.ThumbnailFileName)
}

func (s *Server) handlePictureFile(c *gin.Context) {
	s.serveCollectionFile(c, c.Param("collectionId"),
		catalog.PicturesDirName, c.Param("fileName"))
}

func (s *Server) handleDataFile(c *gin.Context) {
	s.serveCollectionFile(c, c.Param("collectionId"),
		catalog.DataDirName, c.Param("fileName"))
}
