package wordcloud

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/internal/domain"
	"textlens/internal/sentiment"
)

func TestClassifyWord(t *testing.T) {
	assert.Equal(t, sentiment.Positive, ClassifyWord("masterpiece"))
	assert.Equal(t, sentiment.Negative, ClassifyWord("flaws"))
	assert.Equal(t, sentiment.Neutral, ClassifyWord("table"))
	assert.Equal(t, sentiment.Neutral, ClassifyWord("Love"), "matching is exact")

	assert.Equal(t, PositiveColor, Color("best"))
	assert.Equal(t, NegativeColor, Color("awful"))
	assert.Equal(t, NeutralColor, Color("movie"))
}

func TestFrequencies(t *testing.T) {
	got := Frequencies(`The movie was GREAT. "Great" acting, great fun... -- !!`)
	want := map[string]int{"the": 1, "movie": 1, "was": 1, "great": 3, "acting": 1, "fun": 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestTop(t *testing.T) {
	freq := map[string]int{"boring": 2, "plot": 2, "great": 5, "a": 1}

	got := Top(freq, 3)
	want := []domain.Word{
		{Text: "great", Count: 5, Class: "Positive", Color: PositiveColor},
		{Text: "boring", Count: 2, Class: "Negative", Color: NegativeColor},
		{Text: "plot", Count: 2, Class: "Neutral", Color: NeutralColor},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Top mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, Top(freq, 0), 4)
}

func TestRenderTerminal(t *testing.T) {
	words := Build("alpha beta gamma delta alpha", 0)
	out := RenderTerminal(words, 12)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 12)
	}
	assert.Contains(t, out, "alpha")
	assert.Equal(t, "No words.", RenderTerminal(nil, 80))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	words := Build("love love love a&b bad table", 0)
	require.NoError(t, WriteSVG(&buf, words, SVGOptions{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.Contains(t, out, `width="800" height="600"`)
	assert.Contains(t, out, `style="fill:white"`)
	assert.Contains(t, out, `font-size:72px;fill:#28a745">love</text>`)
	assert.Contains(t, out, `font-size:12px;fill:#dc3545">bad</text>`)
	assert.Contains(t, out, ">a&amp;b</text>")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))

	var doc struct {
		XMLName xml.Name `xml:"svg"`
		Texts   []string `xml:"text"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{"love", "a&b", "bad", "table"}, doc.Texts)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVG_WriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, Build("love", 0), DefaultSVGOptions())
	assert.EqualError(t, err, "disk full")
}

func TestWriteSVG_DropsOverflow(t *testing.T) {
	var buf bytes.Buffer
	words := Build(strings.Repeat("word ", 3)+"other", 0)
	require.NoError(t, WriteSVG(&buf, words, SVGOptions{Width: 100, Height: 60, MinFontSize: 40, MaxFontSize: 40}))
	assert.Equal(t, 1, strings.Count(buf.String(), "<text"))
}
