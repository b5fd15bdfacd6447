package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse defines the public shape of a user.
// The password hash is never part of any response.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserWithPostsResponse extends UserResponse with the user's posts.
type UserWithPostsResponse struct {
	UserResponse
	Posts []PostSummary `json:"posts"`
}

// PostSummary is the compact post shape embedded in a user response.
type PostSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

// CreatorResponse is the author shape embedded in a post response.
type CreatorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// PostRequest defines the payload for creating or updating a post.
type PostRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body"  validate:"required,min=1"`
}

// PostResponse defines the public shape of a post.
type PostResponse struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Creator   *CreatorResponse `json:"creator,omitempty"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// postToResponse converts a domain.Post to a PostResponse without creator
// details.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// authoredPostToResponse converts a store.AuthoredPost to a PostResponse
// with its creator embedded.
func authoredPostToResponse(post *store.AuthoredPost) PostResponse {
	resp := postToResponse(&post.Post)
	resp.Creator = &CreatorResponse{
		ID:    post.UserID,
		Name:  post.AuthorName,
		Email: post.AuthorEmail,
	}
	return resp
}
