package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/picogram/picogram-db/internal/config"
	"github.com/picogram/picogram-db/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	db := New(config.DatabaseConfig{URL: "postgres://localhost/picogram"}, nil)
	require.NotNil(t, db)
	assert.NotNil(t, db.logger)
	assert.False(t, db.Connected())
}

func TestOperationsRequireConnection(t *testing.T) {
	db := New(config.DatabaseConfig{URL: "postgres://localhost/picogram"}, nil)
	ctx := context.Background()

	_, err := db.SaveImage(ctx, store.NewImage{URL: "https://x.test/a.jpg", UserID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.GetImage(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.GetImages(ctx)
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.GetImagesByUser(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.GetImagesByTag(ctx, "#tag")
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.LikeImage(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.SaveUser(ctx, store.NewUser{Username: "u", Email: "e@x.test", Name: "N", Password: "p"})
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.GetUser(ctx, "u")
	assert.ErrorIs(t, err, store.ErrNotConnected)

	_, err = db.Authenticate(ctx, "u", "p")
	assert.ErrorIs(t, err, store.ErrNotConnected)
}

func TestDisconnectWhileDisconnected(t *testing.T) {
	db := New(config.DatabaseConfig{URL: "postgres://localhost/picogram"}, nil)

	// Must not panic, but is allowed (required, even) to complain.
	err := db.Disconnect()
	assert.ErrorIs(t, err, store.ErrNotConnected)
}

func TestConnectFailureStaysDisconnected(t *testing.T) {
	// A port nothing listens on: connect must fail and leave the DB down.
	db := New(config.DatabaseConfig{URL: "postgres://127.0.0.1:1/picogram?connect_timeout=1"}, nil)

	err := db.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConnectionFailed)
	assert.False(t, db.Connected())
}

func TestNewEntityStores(t *testing.T) {
	// Constructors must tolerate a nil logger and accept any DBTX.
	images := newImageStore(&sql.DB{}, nil)
	require.NotNil(t, images)
	assert.NotNil(t, images.logger)

	users := newUserStore(&sql.DB{}, nil)
	require.NotNil(t, users)
	assert.NotNil(t, users.logger)
}
