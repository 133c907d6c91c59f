package domain

import "time"

// Document represents a single piece of input text: a file on disk, stdin or
// text pasted into the TUI.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Chunk is one sentence of a document as produced by the splitter.
type Chunk struct {
	DocumentID string
	ChunkID    string
	Text       string
	Index      int
}

// Word is a single entry of the word-frequency view.
type Word struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
	Class string `json:"class"`
	Color string `json:"color"`
}

// Analysis is the result of running the summarizer, the polarity classifier
// and the word-frequency pass over one document.
type Analysis struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Digest        string    `json:"digest"`
	Summary       string    `json:"summary"`
	Polarity      string    `json:"polarity"`
	Score         float64   `json:"score"`
	SentenceCount int       `json:"sentence_count"`
	Words         []Word    `json:"words,omitempty"`
	DocumentID    string    `json:"document_id,omitempty"`
	SummaryChunks []string  `json:"summary_chunks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Vectorizer converts free text into a numeric vector representation over a
// vocabulary built by Prepare.
type Vectorizer interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Splitter breaks text into sentences and puts them back together.
type Splitter interface {
	Split(text string) []string
	Join(sentences []string) string
}

// Chunker splits documents into per-sentence chunks.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// PolarityScorer returns a signed sentiment score for raw text.
type PolarityScorer interface {
	Score(text string) float64
}
