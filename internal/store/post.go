package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
)

// AuthoredPost pairs a post with the name and email of the user who wrote
// it, as produced by a single joined query. The author's password hash is
// never selected.
type AuthoredPost struct {
	domain.Post
	AuthorName  string
	AuthorEmail string
}

// ListOptions bounds a List call. A zero Limit means the store's default
// page size applies; implementations cap Limit at a maximum.
type ListOptions struct {
	Limit  int
	Offset int
}

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrInvalidEntity if the owning user does not exist
	// (foreign key violation).
	// Returns validation errors from the domain Post if data is invalid.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post together with its author's public details.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*AuthoredPost, error)

	// List retrieves posts with their authors, newest first, bounded by opts.
	List(ctx context.Context, opts ListOptions) ([]*AuthoredPost, error)

	// ListByAuthor retrieves all posts written by the given user,
	// newest first.
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)

	// Update replaces the title and body of an existing post and returns
	// the updated row. Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, id uuid.UUID, title, body string) (*domain.Post, error)

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
