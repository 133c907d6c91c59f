package summarizer

import (
	"fmt"

	"textlens/internal/chunker"
	"textlens/internal/domain"
	"textlens/internal/embedding/count"
	"textlens/internal/similarity"
	"textlens/internal/textclean"
)

// DefaultSentences is the summary length used when callers pass a
// non-positive sentence count.
const DefaultSentences = 5

// VectorizerFactory returns a fresh vectorizer for one summarization call.
type VectorizerFactory func() domain.Vectorizer

// SimilaritySummarizer ranks sentences by their summed cosine similarity to
// every sentence of the text, itself included.
type SimilaritySummarizer struct {
	splitter      domain.Splitter
	newVectorizer VectorizerFactory
}

// NewSimilaritySummarizer creates a summarizer. A nil splitter splits on ". "
// and a nil factory uses the raw-count vectorizer.
func NewSimilaritySummarizer(splitter domain.Splitter, newVectorizer VectorizerFactory) *SimilaritySummarizer {
	if splitter == nil {
		splitter = chunker.NewSentenceChunker(chunker.DefaultDelimiter)
	}
	if newVectorizer == nil {
		newVectorizer = func() domain.Vectorizer { return count.NewVectorizer(1) }
	}
	return &SimilaritySummarizer{splitter: splitter, newVectorizer: newVectorizer}
}

// Summarize returns the maxSentences highest scoring sentences joined by the
// splitter. Selected sentences appear in ascending score order, so the best
// sentence comes last. Text with no more than maxSentences sentences is
// returned unchanged.
func (s *SimilaritySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = DefaultSentences
	}
	sentences := s.splitter.Split(text)
	if len(sentences) <= maxSentences {
		return text, nil
	}

	cleaned := make([]string, len(sentences))
	for i, sent := range sentences {
		cleaned[i] = textclean.Clean(sent)
	}

	vectorizer := s.newVectorizer()
	if err := vectorizer.Prepare(cleaned); err != nil {
		return "", fmt.Errorf("prepare %s vectorizer: %w", vectorizer.Name(), err)
	}
	vectors := make([][]float64, len(cleaned))
	for i, c := range cleaned {
		vec, err := vectorizer.Embed(c)
		if err != nil {
			return "", fmt.Errorf("embed sentence %d: %w", i, err)
		}
		vectors[i] = vec
	}

	scores := similarity.RowSums(similarity.Matrix(vectors))
	ranked := similarity.ArgsortAscending(scores)
	selected := make([]string, 0, maxSentences)
	for _, idx := range ranked[len(ranked)-maxSentences:] {
		selected = append(selected, sentences[idx])
	}
	return s.splitter.Join(selected), nil
}
