package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, post *domain.Post) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*store.AuthoredPost, error)
	ListFn         func(ctx context.Context, opts store.ListOptions) ([]*store.AuthoredPost, error)
	ListByAuthorFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)
	UpdateFn       func(ctx context.Context, id uuid.UUID, title, body string) (*domain.Post, error)
	DeleteFn       func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Posts map[uuid.UUID]*store.AuthoredPost

	// AuthorName and AuthorEmail are attached to posts created through the
	// default Create implementation.
	AuthorName  string
	AuthorEmail string

	// Call counters for verification
	CreateCallCount int
	DeleteCallCount int
}

// Ensure MockPostStore implements store.PostStore
var _ store.PostStore = (*MockPostStore)(nil)

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts: make(map[uuid.UUID]*store.AuthoredPost),
	}
}

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.CreateCallCount++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	m.Posts[post.ID] = &store.AuthoredPost{
		Post:        *post,
		AuthorName:  m.AuthorName,
		AuthorEmail: m.AuthorEmail,
	}
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*store.AuthoredPost, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	return post, nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(ctx context.Context, opts store.ListOptions) ([]*store.AuthoredPost, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, opts)
	}

	posts := make([]*store.AuthoredPost, 0, len(m.Posts))
	for _, post := range m.Posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// ListByAuthor implements the PostStore interface
func (m *MockPostStore) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	if m.ListByAuthorFn != nil {
		return m.ListByAuthorFn(ctx, userID)
	}

	posts := make([]*domain.Post, 0)
	for _, post := range m.Posts {
		if post.UserID == userID {
			p := post.Post
			posts = append(posts, &p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// Update implements the PostStore interface
func (m *MockPostStore) Update(ctx context.Context, id uuid.UUID, title, body string) (*domain.Post, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, body)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}

	post.Title = title
	post.Body = body
	post.UpdatedAt = time.Now().UTC()
	updated := post.Post
	return &updated, nil
}

// Delete implements the PostStore interface
func (m *MockPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCallCount++

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Posts[id]; !exists {
		return store.ErrPostNotFound
	}
	delete(m.Posts, id)
	return nil
}
