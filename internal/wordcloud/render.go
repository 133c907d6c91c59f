package wordcloud

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"
	"github.com/charmbracelet/lipgloss"

	"textlens/internal/domain"
)

// RenderTerminal lays the words out in lines no wider than width cells.
// Frequent words are emphasised: the top third of the count range is bold and
// underlined, the middle third bold.
func RenderTerminal(words []domain.Word, width int) string {
	if len(words) == 0 {
		return "No words."
	}
	if width < 10 {
		width = 10
	}
	maxCount := words[0].Count
	for _, w := range words {
		if w.Count > maxCount {
			maxCount = w.Count
		}
	}

	var (
		lines   []string
		line    strings.Builder
		lineLen int
	)
	for _, w := range words {
		n := utf8.RuneCountInString(w.Text)
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteString(" ")
			lineLen++
		}
		line.WriteString(styleFor(w, maxCount).Render(w.Text))
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func styleFor(w domain.Word, maxCount int) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(w.Color))
	ratio := float64(w.Count) / float64(maxCount)
	switch {
	case ratio > 2.0/3.0:
		st = st.Bold(true).Underline(true)
	case ratio > 1.0/3.0:
		st = st.Bold(true)
	}
	return st
}

// SVGOptions controls WriteSVG output.
type SVGOptions struct {
	Width       int
	Height      int
	Background  string
	MinFontSize int
	MaxFontSize int
}

// DefaultSVGOptions is an 800x600 white canvas.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 800, Height: 600, Background: "white", MinFontSize: 12, MaxFontSize: 72}
}

// WriteSVG writes the words as an SVG image with font sizes proportional to
// their counts. Words are placed left to right in rows; words that no longer
// fit on the canvas are dropped.
func WriteSVG(w io.Writer, words []domain.Word, opts SVGOptions) error {
	def := DefaultSVGOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = def.MinFontSize
	}
	if opts.MaxFontSize <= 0 {
		opts.MaxFontSize = def.MaxFontSize
	}
	if opts.MaxFontSize < opts.MinFontSize {
		opts.MaxFontSize = opts.MinFontSize
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+opts.Background)

	minCount, maxCount := countRange(words)
	const pad = 10
	x, y, rowHeight := pad, pad, 0
	for _, word := range words {
		size := opts.MaxFontSize
		if maxCount > minCount {
			size = opts.MinFontSize + (opts.MaxFontSize-opts.MinFontSize)*(word.Count-minCount)/(maxCount-minCount)
		}
		textWidth := size * 6 * utf8.RuneCountInString(word.Text) / 10
		if x > pad && x+textWidth > opts.Width-pad {
			x = pad
			y += rowHeight + pad/2
			rowHeight = 0
		}
		if y+size > opts.Height-pad {
			break
		}
		rowHeight = max(rowHeight, size)
		canvas.Text(x, y+size, word.Text,
			fmt.Sprintf("font-family:sans-serif;font-size:%dpx;fill:%s", size, word.Color))
		x += textWidth + pad
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func countRange(words []domain.Word) (int, int) {
	if len(words) == 0 {
		return 0, 0
	}
	lo, hi := words[0].Count, words[0].Count
	for _, w := range words[1:] {
		if w.Count < lo {
			lo = w.Count
		}
		if w.Count > hi {
			hi = w.Count
		}
	}
	return lo, hi
}
