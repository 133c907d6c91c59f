package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/internal/domain"
)

var _ domain.Summarizer = (*FrequencySummarizer)(nil)

func TestFrequencySummarizer_KeepsDocumentOrder(t *testing.T) {
	s := NewFrequencySummarizer(nil)
	text := "Go is fast. Rain fell. Go compiles Go code fast. Birds sing"

	got, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.Equal(t, "Go is fast. Go compiles Go code fast", got)
}

func TestFrequencySummarizer_ShortTextUnchanged(t *testing.T) {
	s := NewFrequencySummarizer(nil)
	got, err := s.Summarize("A. B. C.", 5)
	require.NoError(t, err)
	assert.Equal(t, "A. B. C.", got)
}
