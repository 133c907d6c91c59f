package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

// VaderScorer scores text with VADER and returns its compound score in [-1, 1].
type VaderScorer struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a scorer backed by the bundled VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score of the raw text.
func (s *VaderScorer) Score(text string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzer.PolarityScores(text).Compound
}
