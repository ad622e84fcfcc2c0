package services

import (
	"errors"

	"microblog/app/models"
	"microblog/app/repositories"
)

// ErrPostMissing reports a comment creation referencing a post that
// does not exist. Handlers map it to 400, not 404: the resource being
// addressed is the comment, and the bad reference makes the request
// itself malformed.
var ErrPostMissing = errors.New("referenced post does not exist")

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment verifies the parent post exists, inserts the comment,
// and re-reads the stored row for the response.
func (s *CommentService) CreateComment(payload *models.CommentCreate) (*models.CommentPublic, error) {
	if _, err := s.postRepo.GetByID(*payload.PostID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostMissing
		}
		return nil, err
	}

	comment := payload.Comment()
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	stored, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	public := models.NewCommentPublic(stored)
	return &public, nil
}
