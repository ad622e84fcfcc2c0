package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"microblog/app/models"
	"microblog/app/repositories"
	"microblog/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController wired to the store
func NewCommentController(store *repositories.Store) *CommentController {
	postRepo := repositories.NewSQLitePostRepository(store)
	commentRepo := repositories.NewSQLiteCommentRepository(store)
	commentService := services.NewCommentService(commentRepo, postRepo)

	return &CommentController{commentService: commentService}
}

// SetService sets the comment service for testing
func (cc *CommentController) SetService(service *services.CommentService) {
	cc.commentService = service
}

// Create handles creating a new comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.CommentCreate
	if problems := decodeJSON(r, &payload); problems != nil {
		sendValidationErrors(w, problems)
		return
	}
	if problems := payload.Validate(); problems != nil {
		sendValidationErrors(w, problems)
		return
	}

	comment, err := cc.commentService.CreateComment(&payload)
	if err != nil {
		if errors.Is(err, services.ErrPostMissing) {
			sendError(w, http.StatusBadRequest, fmt.Sprintf("post %d does not exist", *payload.PostID))
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to create comment: "+err.Error())
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}
