package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/picogram/picogram-db/internal/auth"
	"github.com/picogram/picogram-db/internal/domain"
	"github.com/picogram/picogram-db/internal/platform/logger"
	"github.com/picogram/picogram-db/internal/store"
)

// PostgreSQL error codes
const uniqueViolationCode = "23505"

// userStore carries the user-specific SQL over a store.DBTX.
type userStore struct {
	db     store.DBTX
	logger *slog.Logger
}

func newUserStore(db store.DBTX, logger *slog.Logger) *userStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &userStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, which here can only be the username index.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Save hashes the plaintext password if one is supplied — the plaintext is
// discarded here and never persisted or logged — validates the credential
// invariant and persists the user. The returned record carries the stored
// digest verbatim.
func (s *userStore) Save(ctx context.Context, input store.NewUser) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	digest := ""
	if input.Password != "" {
		digest = auth.HashPassword(input.Password)
	}

	user, err := domain.NewUser(input.Username, input.Email, input.Name, digest, input.Facebook)
	if err != nil {
		log.Warn("user validation failed during save",
			slog.String("error", err.Error()),
			slog.String("username", input.Username))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO users (id, username, email, name, password, facebook, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.Name,
		sql.NullString{String: user.Password, Valid: user.Password != ""},
		user.Facebook,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate username during save",
				slog.String("username", user.Username))
			return nil, fmt.Errorf("username %q already exists: %w", user.Username, err)
		}
		log.Error("failed to save user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, err
	}

	log.Info("user saved",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.Bool("facebook", user.Facebook))
	return user, nil
}

// GetByUsername retrieves a user by exact username match.
// Returns store.ErrUserNotFound if no row matches.
func (s *userStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, name, password, facebook, created_at
		FROM users
		WHERE username = $1
	`

	var user domain.User
	var digest sql.NullString

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Name,
		&digest,
		&user.Facebook,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	user.Password = digest.String

	return &user, nil
}
