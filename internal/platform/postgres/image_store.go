package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/picogram/picogram-db/internal/domain"
	"github.com/picogram/picogram-db/internal/platform/logger"
	"github.com/picogram/picogram-db/internal/store"
	"github.com/picogram/picogram-db/internal/tags"
)

// imageStore carries the image-specific SQL. It operates over a store.DBTX
// so it works against either the pool or a transaction.
type imageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

func newImageStore(db store.DBTX, logger *slog.Logger) *imageStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &imageStore{
		db:     db,
		logger: logger.With(slog.String("component", "image_store")),
	}
}

const imageColumns = "id, public_id, url, description, likes, liked, tags, user_id, created_at"

// Save validates the input, derives the stored record (tags, public id,
// zeroed counters, creation timestamp) and persists it.
// Returns store.ErrInvalidEntity wrapping the validation failure on bad
// input; nothing is written in that case.
func (s *imageStore) Save(ctx context.Context, input store.NewImage) (*domain.Image, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	image, err := domain.NewImage(input.URL, input.Description, input.UserID)
	if err != nil {
		log.Warn("image validation failed during save",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	tagsJSON, err := json.Marshal(image.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO images (id, public_id, url, description, likes, liked, tags, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		image.ID,
		image.PublicID,
		image.URL,
		image.Description,
		image.Likes,
		image.Liked,
		// As a string so the server casts to jsonb; a []byte arg would be
		// sent as bytea.
		string(tagsJSON),
		image.UserID,
		image.CreatedAt,
	)
	if err != nil {
		log.Error("failed to save image",
			slog.String("error", err.Error()),
			slog.String("image_id", image.ID.String()))
		return nil, err
	}

	log.Info("image saved",
		slog.String("image_id", image.ID.String()),
		slog.String("public_id", image.PublicID),
		slog.Int("tags", len(image.Tags)))
	return image, nil
}

// GetByID retrieves an image by its internal id.
// Returns store.ErrImageNotFound if no row matches.
func (s *imageStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	image, err := scanImage(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("image not found", slog.String("image_id", id.String()))
			return nil, store.ErrImageNotFound
		}
		log.Error("failed to get image by ID",
			slog.String("error", err.Error()),
			slog.String("image_id", id.String()))
		return nil, err
	}

	return image, nil
}

// List returns all stored images. The order is whatever the database
// returns; callers must not depend on it.
func (s *imageStore) List(ctx context.Context) ([]*domain.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images`
	return s.list(ctx, query)
}

// ListByUser returns the images owned by userID; an empty slice when none.
func (s *imageStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE user_id = $1`
	return s.list(ctx, query, userID)
}

// ListByTag normalizes tag exactly the way description-derived tags are
// normalized, then filters on JSONB containment so the GIN index applies.
func (s *imageStore) ListByTag(ctx context.Context, tag string) ([]*domain.Image, error) {
	needle, err := json.Marshal([]string{tags.Normalize(tag)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tag filter: %w", err)
	}

	query := `SELECT ` + imageColumns + ` FROM images WHERE tags @> $1`
	return s.list(ctx, query, string(needle))
}

// Like increments the like counter by exactly one and marks the image
// liked, in a single statement so concurrent likes of the same image never
// lose updates. Returns store.ErrImageNotFound if no row matches.
func (s *imageStore) Like(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE images
		SET likes = likes + 1, liked = TRUE
		WHERE id = $1
		RETURNING ` + imageColumns

	image, err := scanImage(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("image not found for like", slog.String("image_id", id.String()))
			return nil, store.ErrImageNotFound
		}
		log.Error("failed to like image",
			slog.String("error", err.Error()),
			slog.String("image_id", id.String()))
		return nil, err
	}

	log.Debug("image liked",
		slog.String("image_id", id.String()),
		slog.Int("likes", image.Likes))
	return image, nil
}

func (s *imageStore) list(ctx context.Context, query string, args ...any) ([]*domain.Image, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list images", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	images := make([]*domain.Image, 0)
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while scanning images", slog.String("error", err.Error()))
		return nil, err
	}

	return images, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (*domain.Image, error) {
	var image domain.Image
	var tagsJSON []byte

	err := row.Scan(
		&image.ID,
		&image.PublicID,
		&image.URL,
		&image.Description,
		&image.Likes,
		&image.Liked,
		&tagsJSON,
		&image.UserID,
		&image.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tagsJSON, &image.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	return &image, nil
}
