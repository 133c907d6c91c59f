// Package wordcloud counts words and colours them by a fixed positive and
// negative word list for the frequency view.
package wordcloud

import (
	"sort"
	"strings"

	"textlens/internal/domain"
	"textlens/internal/sentiment"
	"textlens/internal/textclean"
)

// Colours of the three word classes.
const (
	PositiveColor = "#28a745"
	NegativeColor = "#dc3545"
	NeutralColor  = "#007bff"
)

var positiveWords = toSet(
	"love", "amazing", "great", "fantastic", "masterpiece",
	"wonderful", "stellar", "brilliant", "best", "awesome",
)

var negativeWords = toSet(
	"boring", "worst", "terrible", "disappointing", "predictable",
	"awful", "poor", "bad", "horrible", "flaws",
)

// ClassifyWord reports whether word is on the positive list, the negative
// list or neither. Matching is exact, so callers pass lower-cased words.
func ClassifyWord(word string) sentiment.Polarity {
	if _, ok := positiveWords[word]; ok {
		return sentiment.Positive
	}
	if _, ok := negativeWords[word]; ok {
		return sentiment.Negative
	}
	return sentiment.Neutral
}

// Color returns the hex colour of word.
func Color(word string) string {
	switch ClassifyWord(word) {
	case sentiment.Positive:
		return PositiveColor
	case sentiment.Negative:
		return NegativeColor
	default:
		return NeutralColor
	}
}

// Frequencies counts the whitespace-separated words of text after
// lower-casing them and trimming surrounding punctuation.
func Frequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, raw := range strings.Fields(text) {
		w := textclean.TrimPunctuation(strings.ToLower(raw))
		if w == "" {
			continue
		}
		freq[w]++
	}
	return freq
}

// Top returns at most n words ordered by count, most frequent first. Words
// with equal counts are ordered alphabetically. n <= 0 returns every word.
func Top(freq map[string]int, n int) []domain.Word {
	words := make([]domain.Word, 0, len(freq))
	for w, c := range freq {
		words = append(words, domain.Word{
			Text:  w,
			Count: c,
			Class: ClassifyWord(w).String(),
			Color: Color(w),
		})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Text < words[j].Text
	})
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return words
}

// Build is Top(Frequencies(text), n).
func Build(text string, n int) []domain.Word {
	return Top(Frequencies(text), n)
}

func toSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
