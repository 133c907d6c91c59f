package tfidf

import (
	"math"
	"sort"

	"textlens/internal/textclean"
)

// Vectorizer implements a simple TF-IDF vectorizer with stopword filtering.
// It builds a vocabulary from the corpus and computes IDF values.
type Vectorizer struct {
	vocabulary     map[string]int
	idf            []float64
	dimension      int
	minTokenLength int
	stopwords      map[string]struct{}
}

// NewVectorizer creates an unprepared TF-IDF vectorizer.
func NewVectorizer(minTokenLength int) *Vectorizer {
	return &Vectorizer{
		vocabulary:     make(map[string]int),
		minTokenLength: minTokenLength,
		stopwords:      defaultStopwords(),
	}
}

// Name returns the identifier of this vectorizer.
func (e *Vectorizer) Name() string { return "tfidf" }

// Prepare builds the vocabulary and IDF values from the provided corpus.
// A corpus without usable tokens leaves the vectorizer with dimension 0.
func (e *Vectorizer) Prepare(corpus []string) error {
	// Build vocabulary and document frequencies
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range e.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	N := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		// Smoothed IDF
		e.idf[i] = math.Log((1+N)/(1+float64(df[term]))) + 1.0
	}
	e.dimension = len(terms)
	return nil
}

// Dimension returns the dimensionality of the produced vectors.
func (e *Vectorizer) Dimension() int { return e.dimension }

// Embed computes the L2-normalised TF-IDF vector for the given text.
func (e *Vectorizer) Embed(text string) ([]float64, error) {
	vec := make([]float64, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range e.tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		tfv := float64(count) / float64(total)
		vec[idx] = tfv * e.idf[idx]
	}
	// L2 normalize
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

func (e *Vectorizer) tokenize(text string) []string {
	raw := textclean.TokensMinLength(text, e.minTokenLength)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := e.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
