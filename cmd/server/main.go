// Package main implements the entry point for the blog API server,
// which handles user registration, password login, and CRUD operations
// on blog posts.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/logger"
)

// main initializes configuration, logging, the database connection, and
// dependency wiring, then starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
