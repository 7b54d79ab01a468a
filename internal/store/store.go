package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/picogram/picogram-db/internal/domain"
)

// NewImage is the caller-supplied input for DataStore.SaveImage.
// Description is optional; everything derived from it (the tag set) is
// computed by the store at save time.
type NewImage struct {
	URL         string
	Description string
	UserID      uuid.UUID
}

// NewUser is the caller-supplied input for DataStore.SaveUser. Password is
// plaintext and is discarded after hashing; for federated accounts it is
// left empty and Facebook is set instead.
type NewUser struct {
	Username string
	Email    string
	Name     string
	Password string
	Facebook bool
}

// Connector owns the lifecycle of the single store connection a DataStore
// operates over.
type Connector interface {
	// Connect establishes the underlying connection. When the store was
	// constructed in setup mode it also provisions the backing schema
	// first. On failure the connector stays disconnected and the error
	// wraps ErrConnectionFailed.
	Connect(ctx context.Context) error

	// Disconnect releases the connection. Calling it while disconnected
	// returns ErrNotConnected but never panics.
	Disconnect() error

	// Connected reports the current connection state.
	Connected() bool
}

// DataStore is the aggregate persistence surface consumed by the upstream
// API layer. Every operation requires a live connection and fails with
// ErrNotConnected otherwise. Returned records are copies; callers never
// receive references into store-internal state.
type DataStore interface {
	Connector

	// SaveImage persists a new image. Tags are derived from the
	// description, the public id from the generated id; likes start at
	// zero. Returns the stored record.
	SaveImage(ctx context.Context, input NewImage) (*domain.Image, error)

	// GetImage looks an image up by its public id. A malformed public id
	// and a missing row both return ErrImageNotFound.
	GetImage(ctx context.Context, publicID string) (*domain.Image, error)

	// GetImages returns all stored images in unspecified order.
	GetImages(ctx context.Context) ([]*domain.Image, error)

	// GetImagesByUser returns the images owned by the given user, in
	// unspecified order; an empty slice when there are none.
	GetImagesByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Image, error)

	// GetImagesByTag normalizes tag and returns the images whose tag set
	// contains it, in unspecified order.
	GetImagesByTag(ctx context.Context, tag string) ([]*domain.Image, error)

	// LikeImage increments the like counter by exactly one and marks the
	// image liked, atomically at the store. Not idempotent: liking twice
	// counts twice. Same not-found semantics as GetImage.
	LikeImage(ctx context.Context, publicID string) (*domain.Image, error)

	// SaveUser persists a new user, hashing the plaintext password if one
	// is supplied. The returned record carries the stored digest verbatim;
	// redaction is the caller's concern.
	SaveUser(ctx context.Context, input NewUser) (*domain.User, error)

	// GetUser looks a user up by exact username match.
	// Returns ErrUserNotFound if none matches.
	GetUser(ctx context.Context, username string) (*domain.User, error)

	// Authenticate reports whether the plaintext matches the stored digest
	// of the named password-based account. A missing user, a federated
	// account, and a digest mismatch are all indistinguishably false, so
	// error responses cannot be used to enumerate usernames. The error is
	// non-nil only for store-level failures.
	Authenticate(ctx context.Context, username, password string) (bool, error)
}
