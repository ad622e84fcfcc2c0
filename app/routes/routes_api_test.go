package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelloEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := do(t, router, "GET", "/api/v1/test", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"Hello":"world"}`, w.Body.String())
}

func TestCreateAndGetPost(t *testing.T) {
	router := setupTestRouter(t)

	post := createPost(t, router, "First Post", "Some content")
	require.Greater(t, post.ID, 0)
	require.Equal(t, "First Post", post.Title)
	require.Equal(t, "Some content", post.Content)
	require.NotNil(t, post.Comments)
	require.Len(t, post.Comments, 0)

	// A fresh GET returns the same data.
	w := do(t, router, "GET", fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched postBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, post.ID, fetched.ID)
	require.Equal(t, post.Title, fetched.Title)
	require.Equal(t, post.Content, fetched.Content)
	require.Len(t, fetched.Comments, 0)

	// Reads without intervening mutation are idempotent.
	w2 := do(t, router, "GET", fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
	require.Equal(t, w.Body.String(), w2.Body.String())
}

func TestGetPostNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := do(t, router, "GET", "/api/v1/posts/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Empty(t, w.Body.String())
}

func TestCreatePostValidation(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("missing title", func(t *testing.T) {
		w := do(t, router, "POST", "/api/v1/posts", map[string]string{"content": "x"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Contains(t, body.Errors, "title")

		// No row was created.
		list := do(t, router, "GET", "/api/v1/posts", nil)
		require.Equal(t, http.StatusOK, list.Code)
		require.JSONEq(t, `[]`, list.Body.String())
	})

	t.Run("wrong type", func(t *testing.T) {
		w := doRaw(t, router, "POST", "/api/v1/posts", `{"title":1,"content":"x"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doRaw(t, router, "POST", "/api/v1/posts", `{not json`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestListPosts(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("empty store returns empty array", func(t *testing.T) {
		w := do(t, router, "GET", "/api/v1/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("each entry carries its own data and no comments", func(t *testing.T) {
		first := createPost(t, router, "First", "first body")
		second := createPost(t, router, "Second", "second body")

		// Attach a comment to prove list entries stay comment-free.
		w := do(t, router, "POST", "/api/v1/comments", map[string]interface{}{
			"post_id": first.ID,
			"content": "hi",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		list := do(t, router, "GET", "/api/v1/posts", nil)
		require.Equal(t, http.StatusOK, list.Code)

		var entries []map[string]interface{}
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &entries))
		require.Len(t, entries, 2)

		byTitle := make(map[string]map[string]interface{})
		for _, entry := range entries {
			require.NotContains(t, entry, "comments")
			byTitle[entry["title"].(string)] = entry
		}
		require.Equal(t, "first body", byTitle["First"]["content"])
		require.Equal(t, float64(first.ID), byTitle["First"]["id"])
		require.Equal(t, "second body", byTitle["Second"]["content"])
		require.Equal(t, float64(second.ID), byTitle["Second"]["id"])
	})
}

func TestUpdatePost(t *testing.T) {
	router := setupTestRouter(t)
	post := createPost(t, router, "Original", "Untouched")

	t.Run("patch title only", func(t *testing.T) {
		w := do(t, router, "PATCH", fmt.Sprintf("/api/v1/posts/%d", post.ID), map[string]string{"title": "Renamed"})
		require.Equal(t, http.StatusOK, w.Code)

		var updated postBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, "Untouched", updated.Content)
	})

	t.Run("patch content only", func(t *testing.T) {
		w := do(t, router, "PATCH", fmt.Sprintf("/api/v1/posts/%d", post.ID), map[string]string{"content": "Rewritten"})
		require.Equal(t, http.StatusOK, w.Code)

		var updated postBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, "Rewritten", updated.Content)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		w := do(t, router, "PATCH", fmt.Sprintf("/api/v1/posts/%d", post.ID), map[string]string{})
		require.Equal(t, http.StatusOK, w.Code)

		var updated postBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, "Rewritten", updated.Content)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := do(t, router, "PATCH", "/api/v1/posts/999", map[string]string{"title": "X"})
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Empty(t, w.Body.String())
	})
}

func TestDeletePost(t *testing.T) {
	router := setupTestRouter(t)
	post := createPost(t, router, "Doomed", "Body")

	// Attach a comment so the cascade is observable.
	created := do(t, router, "POST", "/api/v1/comments", map[string]interface{}{
		"post_id": post.ID,
		"content": "gone soon",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	w := do(t, router, "DELETE", fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	// The post and its comments are unreachable afterwards.
	after := do(t, router, "GET", fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusNotFound, after.Code)

	t.Run("unknown id", func(t *testing.T) {
		w := do(t, router, "DELETE", "/api/v1/posts/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateComment(t *testing.T) {
	router := setupTestRouter(t)
	post := createPost(t, router, "Commented", "Body")

	t.Run("unknown post id returns 400", func(t *testing.T) {
		w := do(t, router, "POST", "/api/v1/comments", map[string]interface{}{
			"post_id": 999,
			"content": "orphan",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Contains(t, body["error"], "999")
	})

	t.Run("missing content returns 422", func(t *testing.T) {
		w := do(t, router, "POST", "/api/v1/comments", map[string]interface{}{"post_id": post.ID})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("valid comment with defaulted date", func(t *testing.T) {
		w := do(t, router, "POST", "/api/v1/comments", map[string]interface{}{
			"post_id": post.ID,
			"content": "well said",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var comment commentBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
		require.Greater(t, comment.ID, 0)
		require.Equal(t, post.ID, comment.PostID)
		require.Equal(t, "well said", comment.Content)
		require.WithinDuration(t, time.Now(), comment.PublicationDate, 5*time.Second)

		// The comment shows up in the single-post view.
		view := do(t, router, "GET", fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
		require.Equal(t, http.StatusOK, view.Code)

		var fetched postBody
		require.NoError(t, json.Unmarshal(view.Body.Bytes(), &fetched))
		require.Len(t, fetched.Comments, 1)
		require.Equal(t, comment.ID, fetched.Comments[0].ID)
	})

	t.Run("explicit publication date is preserved", func(t *testing.T) {
		w := do(t, router, "POST", "/api/v1/comments", map[string]interface{}{
			"post_id":          post.ID,
			"content":          "dated",
			"publication_date": "2023-04-05T06:07:08Z",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var comment commentBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
		require.True(t, comment.PublicationDate.Equal(time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)))
	})
}
