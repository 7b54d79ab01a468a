package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNoCredential        = errors.New("either a password or the facebook flag is required")
	ErrAmbiguousCredential = errors.New("a facebook account cannot also carry a password")
)

// User represents a registered account. Password holds the stored credential
// digest, never a plaintext; it is empty for federated (facebook) accounts.
// Exactly one of {Password present, Facebook true} holds for a valid User.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"password,omitempty"`
	Facebook  bool      `json:"facebook,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates a User with a fresh ID and creation timestamp.
// passwordDigest must already be hashed — callers hash the plaintext before
// it reaches the domain, so no plaintext is ever held here. For federated
// accounts pass an empty digest and facebook=true.
// Returns an error if validation fails.
func NewUser(username, email, name, passwordDigest string, facebook bool) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Name:      name,
		Password:  passwordDigest,
		Facebook:  facebook,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data, including the credential
// exclusive-or invariant. Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Password == "" && !u.Facebook {
		return ErrNoCredential
	}

	if u.Password != "" && u.Facebook {
		return ErrAmbiguousCredential
	}

	return nil
}
