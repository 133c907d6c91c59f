package chunker

import (
	"strconv"
	"strings"

	"textlens/internal/domain"
)

// DefaultDelimiter separates sentences: a period followed by a single space.
const DefaultDelimiter = ". "

// SentenceChunker splits text on a literal delimiter. It has no notion of
// abbreviations or decimal numbers: every occurrence of the delimiter is a
// split point and nothing else is.
type SentenceChunker struct {
	delimiter string
}

func NewSentenceChunker(delimiter string) *SentenceChunker {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return &SentenceChunker{delimiter: delimiter}
}

// Split returns the sentences of text in document order. Empty input yields a
// single empty sentence and consecutive delimiters yield empty sentences.
func (c *SentenceChunker) Split(text string) []string {
	return strings.Split(text, c.delimiter)
}

// Join is the inverse of Split.
func (c *SentenceChunker) Join(sentences []string) string {
	return strings.Join(sentences, c.delimiter)
}

// Chunk returns one chunk per sentence of the document.
func (c *SentenceChunker) Chunk(document domain.Document) ([]domain.Chunk, error) {
	sentences := c.Split(document.Content)
	chunks := make([]domain.Chunk, 0, len(sentences))
	for idx, s := range sentences {
		chunks = append(chunks, domain.Chunk{
			DocumentID: document.ID,
			ChunkID:    document.ID + ":" + strconv.Itoa(idx),
			Text:       s,
			Index:      idx,
		})
	}
	return chunks, nil
}
