package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"textlens/internal/chunker"
	"textlens/internal/domain"
	"textlens/internal/history"
	"textlens/internal/ingest"
	"textlens/internal/logging"
	"textlens/internal/sentiment"
	"textlens/internal/summarizer"
	"textlens/internal/wordcloud"
)

// ErrEmptyInput is returned when the text to analyze is blank.
var ErrEmptyInput = errors.New("please enter some text")

// ErrNoDocuments is returned by AnalyzeFiles when no readable file matched.
var ErrNoDocuments = errors.New("no .txt or .pdf documents found")

// Options configures an Analyzer. Zero values select the defaults.
type Options struct {
	Splitter     domain.Splitter
	Chunker      domain.Chunker
	Summarizer   domain.Summarizer
	Scorer       domain.PolarityScorer
	Store        history.Store
	MaxSentences int
	MaxWords     int
	Parallelism  int
	Logger       *slog.Logger
}

// Analyzer runs the summarizer, the polarity classifier and the word count
// over a text and records the result.
type Analyzer struct {
	splitter     domain.Splitter
	chunker      domain.Chunker
	summarizer   domain.Summarizer
	scorer       domain.PolarityScorer
	store        history.Store
	maxSentences int
	maxWords     int
	parallelism  int
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

func NewAnalyzer(opts Options) *Analyzer {
	if opts.Splitter == nil {
		opts.Splitter = chunker.NewSentenceChunker(chunker.DefaultDelimiter)
	}
	if opts.Chunker == nil {
		if c, ok := opts.Splitter.(domain.Chunker); ok {
			opts.Chunker = c
		} else {
			opts.Chunker = chunker.NewSentenceChunker(chunker.DefaultDelimiter)
		}
	}
	if opts.Summarizer == nil {
		opts.Summarizer = summarizer.NewSimilaritySummarizer(opts.Splitter, nil)
	}
	if opts.Scorer == nil {
		opts.Scorer = sentiment.NewVaderScorer()
	}
	if opts.MaxSentences <= 0 {
		opts.MaxSentences = summarizer.DefaultSentences
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 4
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Analyzer{
		splitter:     opts.Splitter,
		chunker:      opts.Chunker,
		summarizer:   opts.Summarizer,
		scorer:       opts.Scorer,
		store:        opts.Store,
		maxSentences: opts.MaxSentences,
		maxWords:     opts.MaxWords,
		parallelism:  opts.Parallelism,
		logger:       opts.Logger,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        func() string { return uuid.NewString() },
	}
}

// AnalyzeText analyzes text after trimming surrounding whitespace. The
// document ID is derived from source.
func (a *Analyzer) AnalyzeText(ctx context.Context, source, text string) (*domain.Analysis, error) {
	return a.AnalyzeDocument(ctx, domain.Document{
		ID:      ingest.HashString(source),
		Path:    source,
		Content: text,
	})
}

// AnalyzeDocument analyzes the trimmed content of doc. The summary sentences
// are traced back to the chunks of doc they were taken from.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, doc domain.Document) (*domain.Analysis, error) {
	doc.Content = strings.TrimSpace(doc.Content)
	if doc.Content == "" {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := doc.Content

	chunks, err := a.chunker.Chunk(doc)
	if err != nil {
		return nil, fmt.Errorf("chunk: %w", err)
	}
	summary, err := a.summarizer.Summarize(text, a.maxSentences)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	score := a.scorer.Score(text)
	result := &domain.Analysis{
		ID:            a.newID(),
		Source:        doc.Path,
		Digest:        digest(text),
		Summary:       summary,
		Polarity:      sentiment.Classify(score).String(),
		Score:         score,
		SentenceCount: len(chunks),
		Words:         wordcloud.Build(text, a.maxWords),
		DocumentID:    doc.ID,
		SummaryChunks: a.summaryChunks(chunks, summary),
		CreatedAt:     a.now(),
	}
	a.logger.Debug("analyzed text",
		"source", doc.Path,
		"document", doc.ID,
		"sentences", result.SentenceCount,
		"polarity", result.Polarity,
		"words", len(result.Words))

	if a.store != nil {
		if err := a.store.Save(ctx, *result); err != nil {
			return nil, fmt.Errorf("save analysis: %w", err)
		}
		a.logger.Info("analysis saved", "id", result.ID, "source", doc.Path)
	}
	return result, nil
}

// summaryChunks returns the IDs of the chunks the summary sentences came
// from, in summary order. Repeated sentences map to successive chunks.
func (a *Analyzer) summaryChunks(chunks []domain.Chunk, summary string) []string {
	used := make([]bool, len(chunks))
	var ids []string
	for _, sentence := range a.splitter.Split(summary) {
		for i, c := range chunks {
			if !used[i] && c.Text == sentence {
				used[i] = true
				ids = append(ids, c.ChunkID)
				break
			}
		}
	}
	return ids
}

// AnalyzeFiles analyzes every .txt and .pdf file matched by paths. Glob
// patterns are expanded and other file types are skipped. Results follow the
// order of the expanded paths.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) ([]domain.Analysis, error) {
	var files []string
	for _, p := range ingest.Expand(paths) {
		if !ingest.Supported(p) {
			a.logger.Debug("skipping unsupported file", "path", p)
			continue
		}
		files = append(files, p)
	}
	if len(files) == 0 {
		return nil, ErrNoDocuments
	}

	results := make([]domain.Analysis, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.parallelism)
	for i, path := range files {
		eg.Go(func() error {
			doc, err := ingest.ReadFile(path)
			if err != nil {
				return err
			}
			res, err := a.AnalyzeDocument(egCtx, doc)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize returns only the summary of the trimmed text.
func (a *Analyzer) Summarize(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}
	return a.summarizer.Summarize(text, a.maxSentences)
}

// Polarity classifies the raw text.
func (a *Analyzer) Polarity(text string) (sentiment.Polarity, error) {
	if strings.TrimSpace(text) == "" {
		return sentiment.Neutral, ErrEmptyInput
	}
	return sentiment.ClassifyText(a.scorer, text), nil
}

// Score returns the raw polarity score of text.
func (a *Analyzer) Score(text string) float64 {
	return a.scorer.Score(text)
}

// History lists stored analyses, newest first.
func (a *Analyzer) History(ctx context.Context, limit int) ([]domain.Analysis, error) {
	if a.store == nil {
		return nil, nil
	}
	return a.store.List(ctx, limit)
}

// Get returns a stored analysis by ID.
func (a *Analyzer) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	if a.store == nil {
		return nil, history.ErrNotFound
	}
	return a.store.Get(ctx, id)
}

// ClearHistory removes every stored analysis.
func (a *Analyzer) ClearHistory(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	return a.store.Clear(ctx)
}

func digest(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}
