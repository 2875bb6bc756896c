package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/service"
)

func bookTestRouter(t *testing.T, n int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &stubBookRepo{}
	for i := 0; i < n; i++ {
		_ = repo.Create(context.Background(), &model.Book{
			Title:      fmt.Sprintf("Book %d", i+1),
			AuthorID:   1,
			CategoryID: 1,
		})
	}

	h := NewBookHandler(service.NewBookService(repo), log)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/api/v1/books", h.List)
	r.GET("/api/v1/books/:id", h.Detail)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookList_PaginationEnvelope(t *testing.T) {
	r := bookTestRouter(t, 55)

	w := getPath(r, "/api/v1/books?page=2&limit=50")
	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	books := data["books"].([]interface{})
	assert.Len(t, books, 5)

	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["page"])
	assert.EqualValues(t, 55, pagination["total"])
	assert.EqualValues(t, 2, pagination["total_pages"])
}

func TestBookList_NonNumericQuery(t *testing.T) {
	r := bookTestRouter(t, 3)

	w := getPath(r, "/api/v1/books?page=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getPath(r, "/api/v1/books?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookDetail_NotFound(t *testing.T) {
	r := bookTestRouter(t, 1)

	w := getPath(r, "/api/v1/books/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getPath(r, "/api/v1/books/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookImport_Endpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &stubBookRepo{}
	h := NewBookHandler(service.NewBookService(repo), log)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.POST("/api/v1/books/import", h.Import)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Books"))
	rows := [][]interface{}{
		{"title", "description", "isbn", "published_year", "price", "total_copies", "author_id", "category_id"},
		{"Dune", "Desert planet epic", "978-0-441-17271-9", 1965, 9.99, 3, 1, 1},
		{"Bad Year", "", "978-1", "next year", 9.99, 3, 1, 1},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Books", cell, &rows[i]))
	}
	workbook, err := f.WriteToBuffer()
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "books.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/books/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 1, data["inserted"])
	assert.EqualValues(t, 1, data["skipped"])
	assert.Len(t, repo.books, 1)

	// no file field at all
	req = httptest.NewRequest(http.MethodPost, "/api/v1/books/import", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
