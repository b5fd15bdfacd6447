package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Post
var (
	ErrEmptyPostID     = errors.New("post ID cannot be empty")
	ErrEmptyPostUserID = errors.New("post user ID cannot be empty")
	ErrEmptyPostTitle  = errors.New("post title cannot be empty")
	ErrEmptyPostBody   = errors.New("post body cannot be empty")
)

// Post represents a blog entry written by a user.
// Every post belongs to exactly one user; the store enforces the
// referential link.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a new Post with the given owner, title, and body.
// It generates a new UUID for the post ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewPost(userID uuid.UUID, title, body string) (*Post, error) {
	post := &Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyPostUserID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPostTitle
	}

	if strings.TrimSpace(p.Body) == "" {
		return ErrEmptyPostBody
	}

	return nil
}

// UpdateContent replaces the post's title and body and refreshes the
// UpdatedAt timestamp. Returns an error if the new content is invalid.
func (p *Post) UpdateContent(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyPostTitle
	}
	if strings.TrimSpace(body) == "" {
		return ErrEmptyPostBody
	}

	p.Title = title
	p.Body = body
	p.UpdatedAt = time.Now().UTC()
	return nil
}
