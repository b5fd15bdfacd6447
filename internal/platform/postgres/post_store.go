package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// Default and maximum page sizes for List.
const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// It saves a new post to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist
// (foreign key violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, user_id, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.UserID,
		post.Title,
		post.Body,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("post_id", post.ID.String()),
				slog.String("user_id", post.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, post.UserID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()),
			slog.String("user_id", post.UserID.String()))
		return MapError(err)
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", post.UserID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
// It retrieves a post joined with its author's public details.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*store.AuthoredPost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.user_id, p.title, p.body, p.created_at, p.updated_at,
		       u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var post store.AuthoredPost
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Body,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.AuthorName,
		&post.AuthorEmail,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, MapError(err)
	}

	return &post, nil
}

// List implements store.PostStore.List
// It retrieves posts with their authors, newest first, bounded by opts.
func (s *PostgresPostStore) List(ctx context.Context, opts store.ListOptions) ([]*store.AuthoredPost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT p.id, p.user_id, p.title, p.body, p.created_at, p.updated_at,
		       u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*store.AuthoredPost, 0)
	for rows.Next() {
		var post store.AuthoredPost
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Body,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.AuthorName,
			&post.AuthorEmail,
		); err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return posts, nil
}

// ListByAuthor implements store.PostStore.ListByAuthor
// It retrieves all posts written by the given user, newest first.
func (s *PostgresPostStore) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, body, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list posts by author",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Body,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return posts, nil
}

// Update implements store.PostStore.Update
// It replaces the title and body of an existing post and returns the
// updated row. Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, id uuid.UUID, title, body string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = $2, body = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, title, body, created_at, updated_at
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id, title, body).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Body,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found during update", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("post updated successfully", slog.String("post_id", post.ID.String()))
	return &post, nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM posts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		log.Debug("post not found during delete", slog.String("post_id", id.String()))
		return err
	}

	log.Info("post deleted successfully", slog.String("post_id", id.String()))
	return nil
}
