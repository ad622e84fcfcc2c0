package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"microblog/app/models"
	"microblog/app/repositories"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController wired to the store
func NewPostController(store *repositories.Store) *PostController {
	postRepo := repositories.NewSQLitePostRepository(store)
	commentRepo := repositories.NewSQLiteCommentRepository(store)
	postService := services.NewPostService(postRepo, commentRepo)

	return &PostController{postService: postService}
}

// SetService sets the post service for testing
func (pc *PostController) SetService(service *services.PostService) {
	pc.postService = service
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	summaries, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts: "+err.Error())
		return
	}

	sendJSON(w, http.StatusOK, summaries)
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendLookupError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.PostCreate
	if problems := decodeJSON(r, &payload); problems != nil {
		sendValidationErrors(w, problems)
		return
	}
	if problems := payload.Validate(); problems != nil {
		sendValidationErrors(w, problems)
		return
	}

	post, err := pc.postService.CreatePost(&payload)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to create post: "+err.Error())
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Update handles partially updating an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	var patch models.PostPartialUpdate
	if problems := decodeJSON(r, &patch); problems != nil {
		sendValidationErrors(w, problems)
		return
	}

	post, err := pc.postService.UpdatePost(id, &patch)
	if err != nil {
		pc.sendLookupError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.sendLookupError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// postID extracts the path ID, responding with 400 when it is not a number.
func (pc *PostController) postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return 0, false
	}
	return id, true
}

// sendLookupError maps an unknown ID to an empty 404 and anything else
// to a generic server error.
func (pc *PostController) sendLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	sendError(w, http.StatusInternalServerError, err.Error())
}
