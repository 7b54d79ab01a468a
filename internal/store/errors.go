package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (ErrImageNotFound, ErrUserNotFound).
	ErrNotFound = errors.New("not found")

	// ErrNotConnected is returned when an operation is attempted before
	// Connect has succeeded or after Disconnect. This is a programming
	// error on the caller's side and is never retried.
	ErrNotConnected = errors.New("database not connected")

	// ErrConnectionFailed is returned (wrapped) when establishing the
	// database connection fails. The connection stays down; retrying is the
	// caller's decision.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	// Nothing is written when this is returned.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrImageNotFound indicates that the requested image does not exist in
	// the store. An unparseable public id is reported the same way: callers
	// cannot tell a bad token from a missing row.
	ErrImageNotFound = fmt.Errorf("image %w", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
