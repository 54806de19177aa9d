// Package tokenize turns raw text into a vocabulary word list.
package tokenize

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Latin letters plus the Latin-1/Extended ranges, so accented words
// (café, niño) survive tokenization.
var nonLetter = regexp.MustCompile("[^a-zA-ZÀ-ɏḀ-ỿ]+")

// Words splits text on non-letter runs, lowercases, drops one-letter
// fragments, dedupes and sorts. The result is the canonical word list
// handed to a new classroom.
func Words(text string) []string {
	seen := make(map[string]struct{})
	for _, raw := range nonLetter.Split(text, -1) {
		word := strings.ToLower(strings.TrimSpace(raw))
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		seen[word] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
