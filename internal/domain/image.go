package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/picogram/picogram-db/internal/publicid"
	"github.com/picogram/picogram-db/internal/tags"
)

// Common validation errors
var (
	ErrEmptyImageID = errors.New("image ID cannot be empty")
	ErrEmptyURL     = errors.New("image URL cannot be empty")
	ErrEmptyOwner   = errors.New("image owner ID cannot be empty")
)

// Image represents a shared picture. The Tags field is derived exactly once
// from the description at creation time; there is no update path for the
// description, so the two never drift apart. PublicID is the base62
// rendering of ID and is the only identifier exposed to external callers.
type Image struct {
	ID          uuid.UUID `json:"id"`
	PublicID    string    `json:"publicId"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Likes       int       `json:"likes"`
	Liked       bool      `json:"liked"`
	Tags        []string  `json:"tags"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewImage creates an Image with a fresh ID, its derived public id and tag
// set, zeroed like counters, and the creation timestamp. Returns an error
// if validation fails.
func NewImage(url, description string, userID uuid.UUID) (*Image, error) {
	id := uuid.New()
	image := &Image{
		ID:          id,
		PublicID:    publicid.Encode(id),
		URL:         url,
		Description: description,
		Likes:       0,
		Liked:       false,
		Tags:        tags.Extract(description),
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := image.Validate(); err != nil {
		return nil, err
	}

	return image, nil
}

// Validate checks if the Image has valid data.
// Returns an error if any field fails validation.
func (i *Image) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyImageID
	}

	if i.URL == "" {
		return ErrEmptyURL
	}

	if i.UserID == uuid.Nil {
		return ErrEmptyOwner
	}

	return nil
}
