package models

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds a validator that reports problems under the JSON
// field names clients actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs struct validation and returns per-field problems,
// or nil if the value is valid.
func checkStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	problems := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			problems[fe.Field()] = fe.Tag()
		}
		return problems
	}

	problems["body"] = err.Error()
	return problems
}

// PostCreate is the payload accepted by POST /posts. Pointer fields
// distinguish "absent" from "present but empty": an empty string is a
// valid value, a missing field is not.
type PostCreate struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// Validate reports missing fields keyed by their JSON names.
func (p *PostCreate) Validate() map[string]string {
	return checkStruct(p)
}

// Post builds the row to insert.
func (p *PostCreate) Post() *Post {
	return &Post{Title: *p.Title, Content: *p.Content}
}

// PostPartialUpdate is the PATCH /posts/{id} payload. A nil field was
// not supplied and leaves the stored value unchanged.
type PostPartialUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *PostPartialUpdate) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// CommentCreate is the payload accepted by POST /comments. A nil
// PublicationDate defaults to the time the request is handled.
type CommentCreate struct {
	PostID          *int       `json:"post_id" validate:"required"`
	Content         *string    `json:"content" validate:"required"`
	PublicationDate *time.Time `json:"publication_date"`
}

// Validate reports missing fields keyed by their JSON names.
func (c *CommentCreate) Validate() map[string]string {
	return checkStruct(c)
}

// Comment builds the row to insert, defaulting the publication date.
func (c *CommentCreate) Comment() *Comment {
	comment := &Comment{
		PostID:  *c.PostID,
		Content: *c.Content,
	}
	if c.PublicationDate != nil {
		comment.PublicationDate = *c.PublicationDate
	} else {
		comment.PublicationDate = time.Now()
	}
	return comment
}

// CommentPublic is the wire shape of a stored comment.
type CommentPublic struct {
	ID              int       `json:"id"`
	PostID          int       `json:"post_id"`
	Content         string    `json:"content"`
	PublicationDate time.Time `json:"publication_date"`
}

// NewCommentPublic maps a comment row to its wire shape.
func NewCommentPublic(c *Comment) CommentPublic {
	return CommentPublic{
		ID:              c.ID,
		PostID:          c.PostID,
		Content:         c.Content,
		PublicationDate: c.PublicationDate,
	}
}

// PostPublic is the single-post view: the post plus its full comment
// list. Comments is never nil; a post without comments renders as [].
type PostPublic struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Comments []CommentPublic `json:"comments"`
}

// NewPostPublic combines a post row with its comments.
func NewPostPublic(post *Post, comments []*Comment) PostPublic {
	public := PostPublic{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Comments: make([]CommentPublic, 0, len(comments)),
	}
	for _, c := range comments {
		public.Comments = append(public.Comments, NewCommentPublic(c))
	}
	return public
}

// PostSummary is the list view. List responses carry no comments, so
// the shape has no comments field at all.
type PostSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewPostSummary maps a post row to its list-entry shape.
func NewPostSummary(post *Post) PostSummary {
	return PostSummary{ID: post.ID, Title: post.Title, Content: post.Content}
}
