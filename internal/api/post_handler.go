package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostHandler handles post CRUD requests.
type PostHandler struct {
	postStore store.PostStore
	userStore store.UserStore
	validator *validator.Validate
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore, userStore store.UserStore) *PostHandler {
	return &PostHandler{
		postStore: postStore,
		userStore: userStore,
		validator: validator.New(),
	}
}

// Create handles the POST /blog endpoint (protected).
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	post, err := domain.NewPost(userID, req.Title, req.Body)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post data: "+err.Error())
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		slog.Error("failed to create post", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	// Resolve the creator for the response shape.
	resp := postToResponse(post)
	if creator, err := h.userStore.GetByID(r.Context(), userID); err == nil {
		resp.Creator = &CreatorResponse{
			ID:    creator.ID,
			Name:  creator.Name,
			Email: creator.Email,
		}
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// List handles the GET /blog endpoint (public).
// Supports optional limit and offset query parameters.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := store.ListOptions{}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		opts.Limit = limit
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		opts.Offset = offset
	}

	posts, err := h.postStore.List(r.Context(), opts)
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	resp := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, authoredPostToResponse(post))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles the GET /blog/{id} endpoint (public).
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authoredPostToResponse(post))
}

// Update handles the PUT /blog/{id} endpoint (protected).
//
// Known gap: as documented, any authenticated user may update any post;
// mutation is not scoped to the owning user.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if _, err := h.postStore.Update(r.Context(), id, req.Title, req.Body); err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	// Re-read through the joined query so the response carries the creator.
	updated, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authoredPostToResponse(updated))
}

// Delete handles the DELETE /blog/{id} endpoint (protected).
//
// Known gap: as documented, any authenticated user may delete any post;
// deletion is not scoped to the owning user.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
