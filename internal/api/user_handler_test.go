package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
)

func TestGetUser(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore)

	postStore := mocks.NewMockPostStore()
	postStore.AuthorName = user.Name
	postStore.AuthorEmail = user.Email

	for _, title := range []string{"first", "second"} {
		post, err := domain.NewPost(user.ID, title, "body of "+title)
		require.NoError(t, err)
		require.NoError(t, postStore.Create(context.Background(), post))
	}

	// A post from someone else should not show up
	other, err := domain.NewPost(uuid.New(), "unrelated", "someone else's post")
	require.NoError(t, err)
	require.NoError(t, postStore.Create(context.Background(), other))

	router := chi.NewRouter()
	router.Get("/user/{id}", NewUserHandler(userStore, postStore).Get)

	t.Run("returns user with posts", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user/"+user.ID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp UserWithPostsResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, user.Name, resp.Name)
		assert.Equal(t, user.Email, resp.Email)
		assert.Len(t, resp.Posts, 2)

		// Password material never leaves the server
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user/"+uuid.New().String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user/42", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
