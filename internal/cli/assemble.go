package cli

import (
	"context"
	"fmt"
	"log/slog"

	"textlens/internal/chunker"
	"textlens/internal/config"
	"textlens/internal/domain"
	"textlens/internal/embedding"
	"textlens/internal/history"
	"textlens/internal/history/memory"
	"textlens/internal/history/sqlite"
	"textlens/internal/sentiment"
	"textlens/internal/service"
	"textlens/internal/summarizer"
)

// assemble builds the analyzer described by cfg. The returned store is nil
// when history is disabled; otherwise the caller must close it.
func assemble(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*service.Analyzer, history.Store, error) {
	splitter := chunker.NewSentenceChunker(chunker.DefaultDelimiter)

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "similarity", "":
		kind, minLen := cfg.Summarizer.Vectorizer, cfg.Summarizer.MinTokenLength
		if _, err := embedding.New(kind, minLen); err != nil {
			return nil, nil, err
		}
		sum = summarizer.NewSimilaritySummarizer(splitter, func() domain.Vectorizer {
			v, _ := embedding.New(kind, minLen)
			return v
		})
	case "frequency":
		sum = summarizer.NewFrequencySummarizer(splitter)
	default:
		return nil, nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	var scorer domain.PolarityScorer
	switch cfg.Sentiment.Type {
	case "vader", "":
		scorer = sentiment.NewVaderScorer()
	case "lexicon":
		scorer = sentiment.NewLexiconScorer()
	default:
		return nil, nil, fmt.Errorf("unknown sentiment scorer: %s", cfg.Sentiment.Type)
	}

	var st history.Store
	switch cfg.History.Type {
	case "none", "":
	case "memory":
		st = memory.NewStore()
	case "sqlite":
		s, err := sqlite.NewStore(cfg.History.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open history: %w", err)
		}
		logger.Debug("history database", "path", s.Path())
		st = s
	default:
		return nil, nil, fmt.Errorf("unknown history store: %s", cfg.History.Type)
	}
	if st != nil {
		if err := st.Init(ctx); err != nil {
			_ = st.Close()
			return nil, nil, fmt.Errorf("init history: %w", err)
		}
	}

	a := service.NewAnalyzer(service.Options{
		Splitter:     splitter,
		Summarizer:   sum,
		Scorer:       scorer,
		Store:        st,
		MaxSentences: cfg.Summarizer.MaxSentences,
		MaxWords:     cfg.Cloud.MaxWords,
		Logger:       logger,
	})
	return a, st, nil
}
