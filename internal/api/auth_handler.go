package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Register handles the POST /user endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Create user
	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	// Hash the password; the plaintext never reaches the store.
	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	// Store user
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already registered")
			return
		}
		slog.Error("failed to create user", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Return the created user without the hash
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Login handles the POST /login endpoint.
// The body is form-encoded with "username" carrying the email, matching
// the OAuth2 password flow shape.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	// Get user by email
	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Unknown email and wrong password produce the same response.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	// Verify password using the injected verifier
	if err := h.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Generate token
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
