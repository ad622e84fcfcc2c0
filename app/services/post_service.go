package services

import (
	"fmt"

	"microblog/app/models"
	"microblog/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// GetPost retrieves a post by ID with its comments. This is the single
// path by which any handler assembles a post-with-comments view; it
// returns repositories.ErrNotFound when the ID is unknown.
func (s *PostService) GetPost(id int) (*models.PostPublic, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}

	public := models.NewPostPublic(post, comments)
	return &public, nil
}

// ListPosts retrieves all posts as summaries. List entries never carry
// comments; each row maps to its own independent summary.
func (s *PostService) ListPosts() ([]models.PostSummary, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, models.NewPostSummary(post))
	}
	return summaries, nil
}

// CreatePost inserts a new post and re-reads it through GetPost so the
// response carries its (necessarily empty) comment list.
func (s *PostService) CreatePost(payload *models.PostCreate) (*models.PostPublic, error) {
	post := payload.Post()
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return s.GetPost(post.ID)
}

// UpdatePost applies only the fields present in the patch, then
// re-reads the post for the response. Fields absent from the patch
// keep their stored values.
func (s *PostService) UpdatePost(id int, patch *models.PostPartialUpdate) (*models.PostPublic, error) {
	// Resolve the target first so an unknown ID surfaces as not found.
	if _, err := s.GetPost(id); err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdateFields(id, patch); err != nil {
		return nil, err
	}
	return s.GetPost(id)
}

// DeletePost removes a post; the store cascades deletion of its
// comments. The lookup is existence validation only.
func (s *PostService) DeletePost(id int) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}
