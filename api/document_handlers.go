package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/docsift/docsift/internal/errors"
	"github.com/docsift/docsift/model"
)

// documentPayload is one document in an ingestion request. Text is a pointer
// so that an explicit JSON null is distinguishable from an empty string: an
// empty text is a valid document, a null one is a precondition violation.
type documentPayload struct {
	ID   string  `json:"id"`
	Text *string `json:"text"`
}

// AddDocumentsHandler appends documents to an index and persists the
// rebuilt state.
// Request body: JSON array of {"id": ..., "text": ...} objects.
func (api *API) AddDocumentsHandler(c *gin.Context) {
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

	var payloads []*documentPayload
	if err := c.ShouldBindJSON(&payloads); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if len(payloads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request must contain at least one document"})
		return
	}

	// Fail fast on malformed entries before anything is ingested.
	docs := make([]model.Document, len(payloads))
	nextPos := accessor.DocumentCount()
	for i, payload := range payloads {
		if payload == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Document entry %d is null", i)})
			return
		}
		if payload.Text == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Document entry %d has a null text", i)})
			return
		}
		id := payload.ID
		if id == "" {
			id = fmt.Sprintf("doc-%d", nextPos+i)
		}
		docs[i] = model.Document{ID: id, Text: *payload.Text}
	}

	if err := accessor.AddDocuments(docs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add documents: " + err.Error()})
		return
	}

	if err := api.engine.PersistIndexData(indexName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Documents indexed but persistence failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("%d documents indexed", len(docs)),
		"document_count": accessor.DocumentCount(),
	})
}

// GetDocumentHandler returns a single document by its ID.
func (api *API) GetDocumentHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	documentID := c.Param("documentId")

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get index: " + err.Error()})
		return
	}

	doc, ok := accessor.GetDocument(documentID)
	if !ok {
		notFound := internalErrors.NewDocumentNotFoundError(documentID, indexName)
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}
