// Package textclean normalises sentences before they are vectorized.
package textclean

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Punctuation is the ASCII punctuation set removed by Clean.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Clean lower-cases s and removes ASCII punctuation and decimal digits.
// Removed characters are dropped, not replaced with spaces, so "it's" becomes "its".
func Clean(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if r < unicode.MaxASCII && strings.ContainsRune(Punctuation, r) {
			continue
		}
		if unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Tokens returns the whitespace-separated tokens of the cleaned text.
func Tokens(s string) []string {
	return strings.Fields(Clean(s))
}

// TrimPunctuation strips leading and trailing ASCII punctuation from word.
func TrimPunctuation(word string) string {
	return strings.Trim(word, Punctuation)
}

// TokensMinLength is Tokens without tokens shorter than minLength runes.
func TokensMinLength(s string, minLength int) []string {
	tokens := Tokens(s)
	if minLength <= 1 {
		return tokens
	}
	out := tokens[:0]
	for _, t := range tokens {
		if utf8.RuneCountInString(t) >= minLength {
			out = append(out, t)
		}
	}
	return out
}
