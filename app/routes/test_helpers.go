package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"microblog/app/repositories"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type commentBody struct {
	ID              int       `json:"id"`
	PostID          int       `json:"post_id"`
	Content         string    `json:"content"`
	PublicationDate time.Time `json:"publication_date"`
}

type postBody struct {
	ID       int           `json:"id"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Comments []commentBody `json:"comments"`
}

// setupTestRouter wires the full router against a fresh SQLite store.
func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	store, err := repositories.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return SetupRoutes(store)
}

// do runs one request through the router and returns the recorder.
func do(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doRaw runs one request with a literal body, for malformed payloads.
func doRaw(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// createPost inserts a post through the API and returns its body.
func createPost(t *testing.T, router *mux.Router, title, content string) postBody {
	t.Helper()
	w := do(t, router, "POST", "/api/v1/posts", map[string]string{
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var post postBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	return post
}
