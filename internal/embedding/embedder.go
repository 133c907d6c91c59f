// Package embedding selects the vectorizer used to compare sentences.
package embedding

import (
	"fmt"

	"textlens/internal/domain"
	"textlens/internal/embedding/count"
	"textlens/internal/embedding/tfidf"
)

// New returns the vectorizer registered under kind. An empty kind selects the
// raw-count vectorizer.
func New(kind string, minTokenLength int) (domain.Vectorizer, error) {
	switch kind {
	case "count", "":
		return count.NewVectorizer(minTokenLength), nil
	case "tfidf":
		return tfidf.NewVectorizer(minTokenLength), nil
	default:
		return nil, fmt.Errorf("unknown vectorizer: %s", kind)
	}
}
