package repositories

import (
	"database/sql"

	"microblog/app/models"
)

// SQLiteCommentRepository implements CommentRepository on the SQLite store
type SQLiteCommentRepository struct {
	store *Store
}

// NewSQLiteCommentRepository creates a new SQLiteCommentRepository
func NewSQLiteCommentRepository(store *Store) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{store: store}
}

// Create inserts a new comment and fills in its generated ID
func (r *SQLiteCommentRepository) Create(comment *models.Comment) error {
	res, err := r.store.db.Exec(
		"INSERT INTO comments (post_id, content, publication_date) VALUES (?, ?, ?)",
		comment.PostID, comment.Content, comment.PublicationDate,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	comment.ID = int(id)
	return nil
}

// GetByID retrieves a comment by ID
func (r *SQLiteCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment models.Comment
	err := r.store.db.QueryRow(
		"SELECT id, post_id, content, publication_date FROM comments WHERE id = ?", id,
	).Scan(&comment.ID, &comment.PostID, &comment.Content, &comment.PublicationDate)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments attached to a post, in store order
func (r *SQLiteCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	rows, err := r.store.db.Query(
		"SELECT id, post_id, content, publication_date FROM comments WHERE post_id = ?",
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.Content, &comment.PublicationDate)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}
