package publicid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := uuid.New()
		token := Encode(id)
		require.NotEmpty(t, token)

		decoded, err := Decode(token)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestRoundTripEdgeValues(t *testing.T) {
	cases := []uuid.UUID{
		uuid.Nil,
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
		uuid.MustParse("00ff0000-0000-0000-0000-000000000000"),
	}
	for _, id := range cases {
		decoded, err := Decode(Encode(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, Encode(id), Encode(id))
}

func TestEncodeIsShorterThanHex(t *testing.T) {
	// The whole point of the public token: shorter than the canonical form.
	id := uuid.New()
	assert.Less(t, len(Encode(id)), len(id.String()))
}

func TestDecodeRejectsInvalidInput(t *testing.T) {
	cases := []string{
		"",
		"not-a-token!",
		"with space",
		// too short: the value does not span 16 bytes
		"f",
		// overflows 16 bytes
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
	}
	for _, token := range cases {
		_, err := Decode(token)
		assert.ErrorIs(t, err, ErrInvalidPublicID, "token %q", token)
	}
}
