// Package tags extracts and normalizes hashtags from free text.
// It is the single source of the tag set stored alongside an image, and
// the same normalization is applied to tag lookup arguments so that stored
// and queried values always agree.
package tags

import (
	"regexp"
	"strings"
)

// A hashtag is a '#' followed by one or more word characters. A run of
// repeated '#' collapses onto the following token, so "##yes" matches once.
var hashtagRe = regexp.MustCompile(`#(\w+)`)

// Extract scans text for hashtag tokens and returns them normalized, in
// order of first appearance, duplicates preserved. Returns an empty slice
// when the text contains no hashtags.
func Extract(text string) []string {
	matches := hashtagRe.FindAllString(text, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, Normalize(m))
	}
	return result
}

// Normalize lowercases a token and strips every '#' marker. It is total
// and idempotent.
func Normalize(token string) string {
	return strings.ReplaceAll(strings.ToLower(token), "#", "")
}
