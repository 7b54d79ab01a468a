package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/picogram/picogram-db/internal/auth"
	"github.com/picogram/picogram-db/internal/config"
	"github.com/picogram/picogram-db/internal/domain"
	"github.com/picogram/picogram-db/internal/publicid"
	"github.com/picogram/picogram-db/internal/store"
)

const connectTimeout = 5 * time.Second

// DB is the PostgreSQL-backed store.DataStore. It owns one connection pool,
// acquired by Connect and released by Disconnect; every operation guards on
// the connection state and delegates to the per-entity stores.
type DB struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger

	sqlDB     *sql.DB
	connected atomic.Bool

	images *imageStore
	users  *userStore
}

// New creates a DB bound to the given configuration. Construction records
// the address and the setup flag but does not touch the network; call
// Connect before issuing operations. If logger is nil, the default logger
// is used.
func New(cfg config.DatabaseConfig, logger *slog.Logger) *DB {
	if logger == nil {
		logger = slog.Default()
	}

	return &DB{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "datastore")),
	}
}

// Ensure DB implements store.DataStore
var _ store.DataStore = (*DB)(nil)

// Connect implements store.Connector.Connect. It opens the connection pool,
// verifies it with a ping, and, when the setup flag is set, provisions the
// backing schema first. On any failure the DB stays disconnected and the
// returned error wraps store.ErrConnectionFailed.
func (d *DB) Connect(ctx context.Context) error {
	db, err := sql.Open("pgx", d.cfg.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrConnectionFailed, err)
	}

	// Reasonable pool defaults for a single logical connection owner.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", store.ErrConnectionFailed, err)
	}

	if d.cfg.Setup {
		d.logger.Info("provisioning database schema")
		if err := provision(ctx, db); err != nil {
			_ = db.Close()
			return fmt.Errorf("%w: %v", store.ErrConnectionFailed, err)
		}
	}

	d.sqlDB = db
	d.images = newImageStore(db, d.logger)
	d.users = newUserStore(db, d.logger)
	d.connected.Store(true)

	d.logger.Info("database connection established")
	return nil
}

// Disconnect implements store.Connector.Disconnect. It releases the
// connection pool; afterwards Connected reports false. Calling it while
// disconnected returns store.ErrNotConnected.
func (d *DB) Disconnect() error {
	if !d.connected.CompareAndSwap(true, false) {
		return store.ErrNotConnected
	}

	err := d.sqlDB.Close()
	d.sqlDB = nil
	d.images = nil
	d.users = nil

	d.logger.Info("database connection closed")
	return err
}

// Connected implements store.Connector.Connected.
func (d *DB) Connected() bool {
	return d.connected.Load()
}

func (d *DB) guard() error {
	if !d.connected.Load() {
		return store.ErrNotConnected
	}
	return nil
}

// decodePublicID is the single place where a malformed public id collapses
// into the not-found path. Keeping the collapse here means the distinction
// could be surfaced later without touching any caller.
func (d *DB) decodePublicID(publicID string) (uuid.UUID, error) {
	id, err := publicid.Decode(publicID)
	if err != nil {
		d.logger.Debug("treating undecodable public id as not found",
			slog.String("public_id", publicID))
		return uuid.Nil, store.ErrImageNotFound
	}
	return id, nil
}

// SaveImage implements store.DataStore.SaveImage.
func (d *DB) SaveImage(ctx context.Context, input store.NewImage) (*domain.Image, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	return d.images.Save(ctx, input)
}

// GetImage implements store.DataStore.GetImage.
func (d *DB) GetImage(ctx context.Context, publicID string) (*domain.Image, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}

	id, err := d.decodePublicID(publicID)
	if err != nil {
		return nil, err
	}
	return d.images.GetByID(ctx, id)
}

// GetImages implements store.DataStore.GetImages.
func (d *DB) GetImages(ctx context.Context) ([]*domain.Image, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	return d.images.List(ctx)
}

// GetImagesByUser implements store.DataStore.GetImagesByUser.
func (d *DB) GetImagesByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Image, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	return d.images.ListByUser(ctx, userID)
}

// GetImagesByTag implements store.DataStore.GetImagesByTag.
func (d *DB) GetImagesByTag(ctx context.Context, tag string) ([]*domain.Image, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	return d.images.ListByTag(ctx, tag)
}

// LikeImage implements store.DataStore.LikeImage.
func (d *DB) LikeImage(ctx context.Context, publicID string) (*domain.Image, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}

	id, err := d.decodePublicID(publicID)
	if err != nil {
		return nil, err
	}
	return d.images.Like(ctx, id)
}

// SaveUser implements store.DataStore.SaveUser.
func (d *DB) SaveUser(ctx context.Context, input store.NewUser) (*domain.User, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	return d.users.Save(ctx, input)
}

// GetUser implements store.DataStore.GetUser.
func (d *DB) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	return d.users.GetByUsername(ctx, username)
}

// Authenticate implements store.DataStore.Authenticate. It is the one
// operation that swallows a not-found lookup into a boolean false, so a
// caller cannot distinguish a missing account from a wrong password.
func (d *DB) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if err := d.guard(); err != nil {
		return false, err
	}

	user, err := d.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	// Federated accounts carry no local credential.
	if user.Password == "" {
		return false, nil
	}

	return auth.VerifyPassword(password, user.Password), nil
}
