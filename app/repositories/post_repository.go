package repositories

import (
	"database/sql"
	"strings"

	"microblog/app/models"
)

// SQLitePostRepository implements PostRepository on the SQLite store
type SQLitePostRepository struct {
	store *Store
}

// NewSQLitePostRepository creates a new SQLitePostRepository
func NewSQLitePostRepository(store *Store) *SQLitePostRepository {
	return &SQLitePostRepository{store: store}
}

// Create inserts a new post and fills in its generated ID
func (r *SQLitePostRepository) Create(post *models.Post) error {
	res, err := r.store.db.Exec(
		"INSERT INTO posts (title, content) VALUES (?, ?)",
		post.Title, post.Content,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	post.ID = int(id)
	return nil
}

// GetByID retrieves a post by ID
func (r *SQLitePostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := r.store.db.QueryRow(
		"SELECT id, title, content FROM posts WHERE id = ?", id,
	).Scan(&post.ID, &post.Title, &post.Content)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts in store order. Every row is scanned into
// its own value, so each entry carries its own data.
func (r *SQLitePostRepository) List() ([]*models.Post, error) {
	rows, err := r.store.db.Query("SELECT id, title, content FROM posts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// UpdateFields applies only the fields present in the patch. An empty
// patch is a no-op that leaves the row untouched.
func (r *SQLitePostRepository) UpdateFields(id int, patch *models.PostPartialUpdate) error {
	var sets []string
	var args []interface{}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.store.db.Exec(
		"UPDATE posts SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post by ID; the store cascades its comments away
func (r *SQLitePostRepository) Delete(id int) error {
	res, err := r.store.db.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
