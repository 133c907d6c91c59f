package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textlens/internal/domain"
)

var _ domain.PolarityScorer = (*LexiconScorer)(nil)

func TestClassify(t *testing.T) {
	assert.Equal(t, Positive, Classify(0.01))
	assert.Equal(t, Negative, Classify(-0.01))
	assert.Equal(t, Neutral, Classify(0))
}

func TestClassifyText(t *testing.T) {
	s := NewLexiconScorer()

	tests := []struct {
		text string
		want Polarity
	}{
		{text: "I love this", want: Positive},
		{text: "I hate this", want: Negative},
		{text: "It is a table", want: Neutral},
		{text: "", want: Neutral},
		{text: "This movie is not good", want: Negative},
		{text: "It wasn't bad at all", want: Positive},
		{text: "A masterpiece, truly brilliant! The ending was predictable though.", want: Positive},
		{text: "Boring plot and terrible acting, although the score was nice.", want: Negative},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyText(s, tt.text))
		})
	}
}

func TestLexiconScorer_Score(t *testing.T) {
	s := NewLexiconScorer()

	assert.InDelta(t, 0.5, s.Score("I love this"), 1e-9)
	assert.InDelta(t, -0.8, s.Score("I hate this"), 1e-9)
	assert.InDelta(t, 0.7*1.3, s.Score("very good"), 1e-9)
	assert.InDelta(t, -0.35, s.Score("not good"), 1e-9)
	assert.InDelta(t, 1.0, s.Score("extremely wonderful"), 1e-9, "clamped")
	assert.InDelta(t, (0.8-0.7)/2, s.Score("Great cast, bad script"), 1e-9)
}

func TestLexiconScorer_CurlyApostrophe(t *testing.T) {
	s := NewLexiconScorer()
	assert.Equal(t, Negative, Classify(s.Score("I don’t like it")))
}

func TestPolarity_Labels(t *testing.T) {
	assert.Equal(t, "Positive 😄", Positive.Label())
	assert.Equal(t, "Negative 😠", Negative.Label())
	assert.Equal(t, "Neutral 😐", Neutral.Label())
	assert.Equal(t, "Neutral", Polarity(42).String())
}

func TestParse(t *testing.T) {
	for _, p := range []Polarity{Positive, Negative, Neutral} {
		got, ok := Parse(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := Parse("positive")
	assert.False(t, ok)
}

var _ domain.PolarityScorer = (*VaderScorer)(nil)

func TestVaderScorer_Classify(t *testing.T) {
	scorer := NewVaderScorer()

	tests := []struct {
		text string
		want Polarity
	}{
		{text: "I love this", want: Positive},
		{text: "I hate this", want: Negative},
		{text: "It is a table", want: Neutral},
		{text: "The acting is great but the plot is terrible and boring", want: Negative},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyText(scorer, tt.text))
		})
	}
}

func TestVaderScorer_Range(t *testing.T) {
	scorer := NewVaderScorer()
	for _, text := range []string{"I love love love this!!!", "I hate this so much", ""} {
		score := scorer.Score(text)
		assert.GreaterOrEqual(t, score, -1.0, text)
		assert.LessOrEqual(t, score, 1.0, text)
	}
	assert.Zero(t, scorer.Score("It is a table"))
}
