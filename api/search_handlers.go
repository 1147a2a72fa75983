package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/docsift/docsift/internal/errors"
	"github.com/docsift/docsift/services"
)

// SearchRequest defines the structure for search queries. TopN omitted or 0
// means the index's configured default.
type SearchRequest struct {
	Query string `json:"query"`
	TopN  int    `json:"top_n"`
}

// SearchHandler handles search requests against an index.
// Request body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get index: " + err.Error()})
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := accessor.Search(services.SearchQuery{
		Query: req.Query,
		TopN:  req.TopN,
	})
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
