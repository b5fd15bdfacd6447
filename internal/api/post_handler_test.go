package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/store"
)

// newPostRouter mounts the handler on a chi router so URL parameters
// resolve the same way they do in the real server.
func newPostRouter(handler *PostHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/blog", handler.Create)
	r.Get("/blog", handler.List)
	r.Get("/blog/{id}", handler.Get)
	r.Put("/blog/{id}", handler.Update)
	r.Delete("/blog/{id}", handler.Delete)
	return r
}

// withUserID simulates the authentication middleware by planting the user
// ID in the request context.
func withUserID(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// seedUser registers a user in the mock store and returns it.
func seedUser(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Test Author", "author@example.com", "password1234567")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password1234567"
	user.Password = ""
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore)

	postStore := mocks.NewMockPostStore()
	postStore.AuthorName = user.Name
	postStore.AuthorEmail = user.Email

	handler := NewPostHandler(postStore, userStore)
	router := newPostRouter(handler)

	tests := []struct {
		name          string
		body          string
		authenticated bool
		wantStatus    int
	}{
		{
			name:          "valid post",
			body:          `{"title":"First post","body":"Hello world"}`,
			authenticated: true,
			wantStatus:    http.StatusCreated,
		},
		{
			name:          "missing title",
			body:          `{"body":"Hello world"}`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "missing body",
			body:          `{"title":"First post"}`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "malformed JSON",
			body:          `{"title":`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "no authenticated user",
			body:          `{"title":"First post","body":"Hello world"}`,
			authenticated: false,
			wantStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/blog", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.authenticated {
				req = withUserID(req, user.ID)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp PostResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEqual(t, uuid.Nil, resp.ID)
				assert.Equal(t, "First post", resp.Title)
				assert.Equal(t, "Hello world", resp.Body)
				require.NotNil(t, resp.Creator)
				assert.Equal(t, user.ID, resp.Creator.ID)
				assert.Equal(t, user.Name, resp.Creator.Name)
				assert.Equal(t, user.Email, resp.Creator.Email)
			}
		})
	}
}

func TestGetPost(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore)

	postStore := mocks.NewMockPostStore()
	postStore.AuthorName = user.Name
	postStore.AuthorEmail = user.Email

	post, err := domain.NewPost(user.ID, "Readable post", "Some body text")
	require.NoError(t, err)
	require.NoError(t, postStore.Create(context.Background(), post))

	router := newPostRouter(NewPostHandler(postStore, userStore))

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/blog/"+post.ID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp PostResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, post.ID, resp.ID)
		assert.Equal(t, "Readable post", resp.Title)
		require.NotNil(t, resp.Creator)
		assert.Equal(t, user.Name, resp.Creator.Name)
		assert.Equal(t, user.Email, resp.Creator.Email)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/blog/"+uuid.New().String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/blog/not-a-uuid", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestListPosts(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore)

	postStore := mocks.NewMockPostStore()
	postStore.AuthorName = user.Name
	postStore.AuthorEmail = user.Email

	for _, title := range []string{"one", "two", "three"} {
		post, err := domain.NewPost(user.ID, title, "body of "+title)
		require.NoError(t, err)
		require.NoError(t, postStore.Create(context.Background(), post))
	}

	router := newPostRouter(NewPostHandler(postStore, userStore))

	t.Run("returns all posts", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/blog", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp []PostResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Len(t, resp, 3)
		for _, p := range resp {
			require.NotNil(t, p.Creator)
			assert.Equal(t, user.Name, p.Creator.Name)
		}
	})

	t.Run("passes pagination options", func(t *testing.T) {
		var gotOpts store.ListOptions
		paged := mocks.NewMockPostStore()
		paged.ListFn = func(ctx context.Context, opts store.ListOptions) ([]*store.AuthoredPost, error) {
			gotOpts = opts
			return nil, nil
		}
		pagedRouter := newPostRouter(NewPostHandler(paged, userStore))

		req := httptest.NewRequest("GET", "/blog?limit=5&offset=10", nil)
		recorder := httptest.NewRecorder()
		pagedRouter.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 5, gotOpts.Limit)
		assert.Equal(t, 10, gotOpts.Offset)
	})

	t.Run("rejects bad limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/blog?limit=abc", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/blog?offset=-1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUpdatePost(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore)

	postStore := mocks.NewMockPostStore()
	postStore.AuthorName = user.Name
	postStore.AuthorEmail = user.Email

	post, err := domain.NewPost(user.ID, "Original", "Original body")
	require.NoError(t, err)
	require.NoError(t, postStore.Create(context.Background(), post))

	router := newPostRouter(NewPostHandler(postStore, userStore))

	t.Run("updates content", func(t *testing.T) {
		body := `{"title":"Updated","body":"Updated body"}`
		req := httptest.NewRequest("PUT", "/blog/"+post.ID.String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = withUserID(req, user.ID)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp PostResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Updated", resp.Title)
		assert.Equal(t, "Updated body", resp.Body)
		require.NotNil(t, resp.Creator)
		assert.Equal(t, user.Name, resp.Creator.Name)
	})

	t.Run("not found", func(t *testing.T) {
		body := `{"title":"Updated","body":"Updated body"}`
		req := httptest.NewRequest("PUT", "/blog/"+uuid.New().String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = withUserID(req, user.ID)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		body := `{"title":"Updated","body":"Updated body"}`
		req := httptest.NewRequest("PUT", "/blog/"+post.ID.String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore)

	postStore := mocks.NewMockPostStore()
	post, err := domain.NewPost(user.ID, "Doomed post", "Soon gone")
	require.NoError(t, err)
	require.NoError(t, postStore.Create(context.Background(), post))

	router := newPostRouter(NewPostHandler(postStore, userStore))

	t.Run("deletes and returns no content", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/blog/"+post.ID.String(), nil)
		req = withUserID(req, user.ID)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())

		// A second delete reports not found
		req = httptest.NewRequest("DELETE", "/blog/"+post.ID.String(), nil)
		req = withUserID(req, user.ID)
		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		deleteStore := mocks.NewMockPostStore()
		deleteRouter := newPostRouter(NewPostHandler(deleteStore, userStore))

		req := httptest.NewRequest("DELETE", "/blog/"+uuid.New().String(), nil)
		recorder := httptest.NewRecorder()
		deleteRouter.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, 0, deleteStore.DeleteCallCount)
	})
}
