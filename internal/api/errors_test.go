package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized operation", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{
			"wrapped not found",
			fmt.Errorf("loading post: %w", store.ErrPostNotFound),
			http.StatusNotFound,
		},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation error", domain.ErrValidation, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{
			"field validation error",
			domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			http.StatusBadRequest,
		},
		{"unknown error", errors.New("something broke"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"post not found", store.ErrPostNotFound, "Post not found"},
		{"email exists", store.ErrEmailExists, "Email already registered"},
		{
			"validation error with field",
			domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			"Invalid id: has invalid format",
		},
		{"nil error", nil, "An unexpected error occurred"},
		{
			"internal detail is not leaked",
			errors.New("pq: connection refused host=10.0.0.5"),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	// Unrecognized shapes collapse to a generic message
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
