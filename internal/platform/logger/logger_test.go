package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/picogram/picogram-db/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	logger := Setup(config.ServerConfig{LogLevel: "debug"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger = Setup(config.ServerConfig{LogLevel: "error"})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	logger := Setup(config.ServerConfig{LogLevel: "loud"})
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestFromContextOrDefault(t *testing.T) {
	var buf bytes.Buffer
	ctxLogger := slog.New(slog.NewJSONHandler(&buf, nil))
	defLogger := slog.New(slog.NewJSONHandler(&buf, nil))

	// No logger in context: the provided default wins.
	got := FromContextOrDefault(context.Background(), defLogger)
	assert.Same(t, defLogger, got)

	// Logger in context: it wins over the default.
	ctx := WithLogger(context.Background(), ctxLogger)
	got = FromContextOrDefault(ctx, defLogger)
	assert.Same(t, ctxLogger, got)

	// Nothing anywhere: slog.Default.
	got = FromContextOrDefault(context.Background(), nil)
	assert.Same(t, slog.Default(), got)
}

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, logger, got)
}
