package count

import (
	"sort"

	"textlens/internal/textclean"
)

// Vectorizer is a bag-of-words vectorizer producing raw term counts over the
// vocabulary of the corpus passed to Prepare.
type Vectorizer struct {
	vocabulary     map[string]int
	dimension      int
	minTokenLength int
}

// NewVectorizer creates an unprepared count vectorizer. Tokens shorter than
// minTokenLength runes are ignored; values below 1 keep every token.
func NewVectorizer(minTokenLength int) *Vectorizer {
	if minTokenLength < 1 {
		minTokenLength = 1
	}
	return &Vectorizer{
		vocabulary:     make(map[string]int),
		minTokenLength: minTokenLength,
	}
}

// Name returns the identifier of this vectorizer.
func (v *Vectorizer) Name() string { return "count" }

// Prepare builds the vocabulary from the corpus. Terms are ordered
// lexicographically so vector columns are stable. A corpus without tokens
// produces an empty vocabulary and zero-length vectors.
func (v *Vectorizer) Prepare(corpus []string) error {
	seen := make(map[string]struct{})
	for _, text := range corpus {
		for _, tok := range v.tokenize(text) {
			seen[tok] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	v.vocabulary = make(map[string]int, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
	}
	v.dimension = len(terms)
	return nil
}

// Dimension returns the vocabulary size.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Embed returns the term counts of text. Tokens missing from the vocabulary
// are ignored.
func (v *Vectorizer) Embed(text string) ([]float64, error) {
	vec := make([]float64, v.dimension)
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	return vec, nil
}

func (v *Vectorizer) tokenize(text string) []string {
	return textclean.TokensMinLength(text, v.minTokenLength)
}
