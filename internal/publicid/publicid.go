// Package publicid converts internal UUIDs to the short base62 tokens
// exposed to external callers, and back. The encoding is deterministic and
// reversible: Decode(Encode(id)) == id for every UUID.
package publicid

import (
	"errors"
	"math/big"

	"github.com/google/uuid"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrInvalidPublicID is returned by Decode when the input is not a valid
// encoding of a UUID. Callers that look entities up by public id are
// expected to collapse this into their not-found path rather than expose
// the distinction.
var ErrInvalidPublicID = errors.New("invalid public id")

var base = big.NewInt(int64(len(alphabet)))

// digitValue maps an alphabet byte back to its numeric value; -1 marks
// bytes outside the alphabet.
var digitValue = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}()

// Encode renders the UUID's 16 bytes as a base62 token. Leading zero bytes
// are preserved as leading '0' characters so the encoding stays a bijection.
func Encode(id uuid.UUID) string {
	raw := id[:]

	zeros := 0
	for zeros < len(raw) && raw[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(raw[zeros:])
	mod := new(big.Int)

	// Digits come out least-significant first.
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Decode is the exact inverse of Encode. It returns ErrInvalidPublicID for
// an empty token, a token containing characters outside the alphabet, or a
// token whose value does not fit in a UUID.
func Decode(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalidPublicID
	}

	zeros := 0
	for zeros < len(token) && token[zeros] == alphabet[0] {
		zeros++
	}

	n := new(big.Int)
	for i := zeros; i < len(token); i++ {
		d := digitValue[token[i]]
		if d < 0 {
			return uuid.Nil, ErrInvalidPublicID
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(d)))
	}

	raw := n.Bytes()
	if zeros+len(raw) != len(uuid.UUID{}) {
		return uuid.Nil, ErrInvalidPublicID
	}

	var id uuid.UUID
	copy(id[zeros:], raw)
	return id, nil
}
