package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// Known digest; existing stored credentials depend on this exact value.
	const digest = "02b353bf5358995bc7d193ed1ce9c2eaec2b694b21d2f96232c9d6a0832121d1"
	assert.Equal(t, digest, HashPassword("foo123"))

	// Deterministic, and distinct inputs yield distinct digests.
	assert.Equal(t, HashPassword("secret"), HashPassword("secret"))
	assert.NotEqual(t, HashPassword("secret"), HashPassword("secret "))
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("1234")

	assert.True(t, VerifyPassword("1234", digest))
	assert.False(t, VerifyPassword("wrong", digest))
	assert.False(t, VerifyPassword("1234", ""))
	assert.False(t, VerifyPassword("", digest))
}
