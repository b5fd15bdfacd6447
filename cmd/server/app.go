package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// application holds the constructed dependencies of the running server.
// Everything is wired once here and passed into handlers at construction
// time; no component reaches for global state.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	postStore store.PostStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication connects to the database, applies migrations, and wires
// the stores and services the handlers depend on.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, logger),
		postStore:        postgres.NewPostgresPostStore(db, logger),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
