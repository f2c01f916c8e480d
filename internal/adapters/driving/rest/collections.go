package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
	"github.com/kuradex-labs/kuradex/internal/logger"
)

// searchQuery is the query-string shape of a search request. Field names
// match what the browser UI sends.
type searchQuery struct {
	SearchText      string `form:"searchText"`
	SearchField     int    `form:"searchField"`
	SearchMethod    int    `form:"searchMethod"`
	InventoryStatus *int   `form:"inventoryStatus"`
	Page            int    `form:"page"`
	PageSize        int    `form:"pageSize"`
}

// toCriteria maps the wire shape onto domain criteria. Out-of-range values
// are left for Normalize; an unknown status code means no status filter.
func (q searchQuery) toCriteria() domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		SearchText:   q.SearchText,
		SearchField:  domain.SearchField(q.SearchField),
		SearchMethod: domain.SearchMethod(q.SearchMethod),
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
	if q.InventoryStatus != nil {
		status := domain.InventoryStatus(*q.InventoryStatus)
		if status.IsValid() {
			criteria.InventoryStatus = &status
		}
	}
	return criteria
}

func (s *Server) handleSearch(c *gin.Context) {
	var query searchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	criteria := query.toCriteria()
	if criteria.PageSize < 1 {
		criteria.PageSize = s.cfg.Search.DefaultPageSize
	}
	if s.cfg.Search.MaxPageSize > 0 && criteria.PageSize > s.cfg.Search.MaxPageSize {
		criteria.PageSize = s.cfg.Search.MaxPageSize
	}

	result, err := s.search.Search(c.Request.Context(), criteria)
	if err != nil {
		s.log.Error("search failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "search failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleListCollections(c *gin.Context) {
	records, err := s.catalog.GetAll(c.Request.Context())
	if err != nil {
		s.log.Error("list collections failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "list failed")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleGetCollection(c *gin.Context) {
	id := c.Param("id")
	record, err := s.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, "collection not found")
			return
		}
		s.log.Error("get collection failed",
			zap.String("id", logger.Sanitize(id)), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "lookup failed")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) handleCategories(c *gin.Context) {
	categories, err := s.catalog.Categories(c.Request.Context())
	if err != nil {
		s.log.Error("categories failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "categories failed")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleTags(c *gin.Context) {
	tags, err := s.catalog.Tags(c.Request.Context())
	if err != nil {
		s.log.Error("tags failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "tags failed")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (s *Server) handleRebuild(c *gin.Context) {
	count, err := s.catalog.Rebuild(c.Request.Context())
	if err != nil {
		s.log.Error("rebuild failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "rebuild failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": count})
}
