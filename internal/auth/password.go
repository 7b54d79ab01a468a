// Package auth provides the credential hashing used for password-based
// accounts.
//
// The digest is an unsalted SHA-256 of the plaintext, rendered as lowercase
// hex. This reproduces the format of the existing data set and keeps
// digests comparable across installs, at the documented cost of being
// vulnerable to precomputed-table attacks. A future credential migration
// should move to a salted KDF.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext.
// Deterministic: the same input always yields the same digest.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the plaintext hashes to the given digest.
// The comparison is constant-time.
func VerifyPassword(plaintext, digest string) bool {
	computed := HashPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
