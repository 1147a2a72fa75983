// Package api exposes the engine over HTTP: index lifecycle, document
// ingestion, and search.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docsift/docsift/config"
	internalErrors "github.com/docsift/docsift/internal/errors"
	"github.com/docsift/docsift/services"
)

// API holds dependencies for the HTTP handlers, primarily the index manager.
type API struct {
	engine services.IndexManager
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all API routes.
func SetupRoutes(router *gin.Engine, engine services.IndexManager) {
	apiHandler := NewAPI(engine)

	router.GET("/health", apiHandler.HealthCheckHandler)

	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)
		indexRoutes.GET("", apiHandler.ListIndexesHandler)
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler)

		docRoutes := indexRoutes.Group("/:indexName/documents")
		{
			docRoutes.PUT("", apiHandler.AddDocumentsHandler)
			docRoutes.GET("/:documentId", apiHandler.GetDocumentHandler)
		}

		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
	}
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateIndexHandler handles the request to create a new index.
// Request body: config.IndexSettings
func (api *API) CreateIndexHandler(c *gin.Context) {
	var settings config.IndexSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := api.engine.CreateIndex(settings); err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrIndexAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, internalErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create index: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Index '" + settings.Name + "' created successfully"})
}

// ListIndexesHandler returns the names of all indexes.
func (api *API) ListIndexesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indexes": api.engine.ListIndexes()})
}

// GetIndexHandler returns an index's settings and document count.
func (api *API) GetIndexHandler(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"settings":       accessor.Settings(),
		"document_count": accessor.DocumentCount(),
	})
}

// DeleteIndexHandler deletes an index.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	if err := api.engine.DeleteIndex(indexName); err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete index: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Index '" + indexName + "' deleted successfully"})
}
