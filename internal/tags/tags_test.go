package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	got := Extract("a #picture with tags #AweSome #Platzi #AVA and #100 ##yes")
	assert.Equal(t, []string{"picture", "awesome", "platzi", "ava", "100", "yes"}, got)

	got = Extract("a picture with no tags")
	assert.Empty(t, got)

	got = Extract("")
	assert.Empty(t, got)
}

func TestExtractCollapsesRepeatedMarkers(t *testing.T) {
	// Only the last '#' of a run starts a match.
	assert.Equal(t, []string{"yes"}, Extract("##yes"))
	assert.Equal(t, []string{"yes"}, Extract("####yes"))
}

func TestExtractPreservesDuplicatesAndOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "a"}, Extract("#A #a"))
	assert.Equal(t, []string{"b", "a", "b"}, Extract("#b then #a then #b again"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "awesome", Normalize("#AweSome"))
	assert.Equal(t, "plain", Normalize("plain"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "x", Normalize("##x"))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, token := range []string{"#Tag", "tag", "##A1_b", ""} {
		once := Normalize(token)
		assert.Equal(t, once, Normalize(once))
	}
}
