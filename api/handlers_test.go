package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/engine"
	testutil "github.com/docsift/docsift/internal/testing"
	"github.com/docsift/docsift/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *engine.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng := testutil.CreateTestEngine(t)
	router := gin.New()
	SetupRoutes(router, eng)
	return router, eng
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	recorder := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestIndexLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	created := doRequest(router, http.MethodPost, "/indexes", gin.H{"name": "records"})
	require.Equal(t, http.StatusCreated, created.Code)

	duplicate := doRequest(router, http.MethodPost, "/indexes", gin.H{"name": "records"})
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	invalid := doRequest(router, http.MethodPost, "/indexes", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	list := doRequest(router, http.MethodGet, "/indexes", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "records")

	get := doRequest(router, http.MethodGet, "/indexes/records", nil)
	require.Equal(t, http.StatusOK, get.Code)

	missing := doRequest(router, http.MethodGet, "/indexes/ghost", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	deleted := doRequest(router, http.MethodDelete, "/indexes/records", nil)
	assert.Equal(t, http.StatusOK, deleted.Code)
	gone := doRequest(router, http.MethodGet, "/indexes/records", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestAddDocumentsAndSearch(t *testing.T) {
	router, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, "/indexes", gin.H{"name": "records"}).Code)

	added := doRequest(router, http.MethodPut, "/indexes/records/documents", []gin.H{
		{"id": "dog.txt", "text": "The tallest dog ever measured lived in Michigan."},
		{"id": "cake.txt", "text": "The largest cake weighed several tonnes."},
	})
	require.Equal(t, http.StatusOK, added.Code)

	search := doRequest(router, http.MethodPost, "/indexes/records/_search", gin.H{
		"query": "tallest dog",
		"top_n": 2,
	})
	require.Equal(t, http.StatusOK, search.Code)

	var result services.SearchResult
	require.NoError(t, json.Unmarshal(search.Body.Bytes(), &result))
	require.Len(t, result.Hits, 2)
	assert.Equal(t, "dog.txt", result.Hits[0].Document.ID)
	assert.Greater(t, result.Hits[0].Score, 0.0)
	assert.NotEmpty(t, result.QueryID)

	doc := doRequest(router, http.MethodGet, "/indexes/records/documents/dog.txt", nil)
	assert.Equal(t, http.StatusOK, doc.Code)
	missing := doRequest(router, http.MethodGet, "/indexes/records/documents/none.txt", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestSearchPreSeededEngine(t *testing.T) {
	router, eng := newTestRouter(t)

	accessor := testutil.CreateTestIndex(t, eng, "records")
	testutil.AddSampleDocuments(t, accessor, testutil.SampleTexts)

	search := doRequest(router, http.MethodPost, "/indexes/records/_search", gin.H{
		"query": "largest collection of cans",
	})
	require.Equal(t, http.StatusOK, search.Code)

	var result services.SearchResult
	require.NoError(t, json.Unmarshal(search.Body.Bytes(), &result))
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "doc-1", result.Hits[0].Document.ID)
	assert.Equal(t, len(testutil.SampleTexts), result.Total)
}

func TestAddDocumentsRejectsNullEntries(t *testing.T) {
	router, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, "/indexes", gin.H{"name": "records"}).Code)

	nullEntry := doRequest(router, http.MethodPut, "/indexes/records/documents",
		[]interface{}{gin.H{"id": "a", "text": "fine"}, nil})
	assert.Equal(t, http.StatusBadRequest, nullEntry.Code)

	nullText := doRequest(router, http.MethodPut, "/indexes/records/documents",
		[]interface{}{gin.H{"id": "a", "text": nil}})
	assert.Equal(t, http.StatusBadRequest, nullText.Code)

	// Nothing was ingested by the rejected requests.
	get := doRequest(router, http.MethodGet, "/indexes/records", nil)
	assert.Contains(t, get.Body.String(), `"document_count":0`)
}

func TestSearchValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, "/indexes", gin.H{"name": "records"}).Code)

	negative := doRequest(router, http.MethodPost, "/indexes/records/_search", gin.H{
		"query": "anything",
		"top_n": -1,
	})
	assert.Equal(t, http.StatusBadRequest, negative.Code)

	noIndex := doRequest(router, http.MethodPost, "/indexes/ghost/_search", gin.H{"query": "x"})
	assert.Equal(t, http.StatusNotFound, noIndex.Code)

	// Empty query against an empty index is a defined degenerate case.
	empty := doRequest(router, http.MethodPost, "/indexes/records/_search", gin.H{"query": ""})
	require.Equal(t, http.StatusOK, empty.Code)
	var result services.SearchResult
	require.NoError(t, json.Unmarshal(empty.Body.Bytes(), &result))
	assert.Empty(t, result.Hits)
}
