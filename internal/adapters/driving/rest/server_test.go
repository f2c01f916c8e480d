package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuradex-labs/kuradex/internal/adapters/driven/config/file"
	"github.com/kuradex-labs/kuradex/internal/adapters/driven/storage/memory"
	"github.com/kuradex-labs/kuradex/internal/catalog"
	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/core/services"
)

// newTestServer builds a server over a real scanner and data root so file
// serving and search go through the same paths production uses.
func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	dataRoot := t.TempDir()
	writeTestCollection(t, dataRoot, "A001", "name,Brass Gear\ncategory,Mechanical\ntag1,brass\ncurrentinventory,0\nsafetystock,5\n")
	writeTestCollection(t, dataRoot, "B001", "name,Copper Wire\ncategory,Electrical\ntag1,copper\ncurrentinventory,30\n")

	settings := domain.DefaultProjectSettings()
	settings.ProjectName = "Test Project"
	settings.DataRoot = dataRoot

	store := memory.NewCatalogStore()
	scanner := catalog.NewScanner(dataRoot, nil)
	catalogSvc := services.NewCatalogService(scanner, store, settings, nil)
	searchSvc := services.NewSearchService(store, nil)

	_, err := catalogSvc.Rebuild(context.Background())
	require.NoError(t, err)

	cfg := file.DefaultConfig()
	cfg.RateLimit.RequestsPerSecond = 0 // keep tests deterministic
	return NewServer(cfg, catalogSvc, searchSvc, nil), dataRoot
}

func writeTestCollection(t *testing.T, root, id, metadata string) {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.MetadataFileName), []byte(metadata), 0o644))
}

func doRequest(t *testing.T, server *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestServer_Collections(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("list all", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, "/api/collections")
		require.Equal(t, http.StatusOK, rec.Code)

		var records []domain.CollectionRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "A001", records[0].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, "/api/collections/B001")
		require.Equal(t, http.StatusOK, rec.Code)

		var record domain.CollectionRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
		assert.Equal(t, "Copper Wire", record.Name)
		assert.Equal(t, domain.StatusAppropriate, record.InventoryStatus)
	})

	t.Run("get unknown id is 404", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, "/api/collections/Z999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("categories facet", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, "/api/collections/categories")
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
		assert.Equal(t, []string{"Electrical", "Mechanical"}, categories)
	})

	t.Run("tags facet", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, "/api/collections/tags")
		require.Equal(t, http.StatusOK, rec.Code)

		var tags []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
		assert.Equal(t, []string{"brass", "copper"}, tags)
	})
}

func TestServer_Search(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("text search", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			"/api/collections/search?searchText=gear&searchField=2&searchMethod=0")
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.SearchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, 1, result.TotalCount)
		assert.Equal(t, "A001", result.Collections[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			"/api/collections/search?inventoryStatus=0")
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.SearchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, 1, result.TotalCount)
		assert.Equal(t, "A001", result.Collections[0].ID)
	})

	t.Run("unknown status code is ignored", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			"/api/collections/search?inventoryStatus=42")
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.SearchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("out-of-range paging is normalized", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			"/api/collections/search?page=-3&pageSize=99999")
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.SearchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, domain.MaxPageSize, result.PageSize)
	})

	t.Run("non-numeric enum is a 400", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet,
			"/api/collections/search?searchField=banana")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Rebuild(t *testing.T) {
	server, dataRoot := newTestServer(t)

	writeTestCollection(t, dataRoot, "C001", "name,New Arrival\n")

	rec := doRequest(t, server, http.MethodPost, "/api/collections/rebuild")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body["collections"])

	rec = doRequest(t, server, http.MethodGet, "/api/collections/C001")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ProjectSettings(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/ProjectSettings")
	require.Equal(t, http.StatusOK, rec.Code)

	var body projectSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Test Project", body.ProjectName)
	assert.Equal(t, "Tag 1", body.Tag1Name)
}
