package models

import "time"

// Post is a persisted blog post row. IDs are assigned by the store on
// insert and never change afterwards.
type Post struct {
	ID      int
	Title   string
	Content string
}

// Comment is a persisted comment row, attached to exactly one post.
type Comment struct {
	ID              int
	PostID          int
	Content         string
	PublicationDate time.Time
}
