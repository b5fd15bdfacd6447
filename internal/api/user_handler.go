package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/store"
)

// UserHandler handles user read requests.
type UserHandler struct {
	userStore store.UserStore
	postStore store.PostStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, postStore store.PostStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		postStore: postStore,
	}
}

// Get handles the GET /user/{id} endpoint, returning the user together
// with the posts they have written.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}

	posts, err := h.postStore.ListByAuthor(r.Context(), id)
	if err != nil {
		slog.Error("failed to list posts for user", "error", err, "user_id", id)
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}

	resp := UserWithPostsResponse{
		UserResponse: userToResponse(user),
		Posts:        make([]PostSummary, 0, len(posts)),
	}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, PostSummary{
			ID:    post.ID,
			Title: post.Title,
			Body:  post.Body,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
