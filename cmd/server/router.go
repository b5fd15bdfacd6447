package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/blog-api/internal/api"
	apimiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
	"github.com/phrazzld/blog-api/internal/api/shared"
)

// setupRouter builds the chi router with middleware and all route handlers.
func (app *application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	userHandler := api.NewUserHandler(app.userStore, app.postStore)
	postHandler := api.NewPostHandler(app.postStore, app.userStore)
	exportHandler := api.NewExportHandler(app.postStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	// Public routes
	r.Post("/user", authHandler.Register)
	r.Get("/user/{id}", userHandler.Get)
	r.Post("/login", authHandler.Login)
	r.Get("/blog", postHandler.List)
	r.Get("/blog/{id}", postHandler.Get)
	r.Get("/blog/{id}/export", exportHandler.ExportPost)
	r.Get("/health", app.handleHealth)

	// Routes requiring a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/blog", postHandler.Create)
		r.Put("/blog/{id}", postHandler.Update)
		r.Delete("/blog/{id}", postHandler.Delete)
	})

	return r
}

// handleHealth reports readiness by pinging the database.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
