// Package sentiment maps raw text to a three-way polarity label.
package sentiment

import (
	"textlens/internal/domain"
)

// Polarity is the sentiment label of a text or word.
type Polarity int

const (
	Neutral Polarity = iota
	Positive
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Emoji returns the face shown next to the label.
func (p Polarity) Emoji() string {
	switch p {
	case Positive:
		return "😄"
	case Negative:
		return "😠"
	default:
		return "😐"
	}
}

// Label is the display form, e.g. "Positive 😄".
func (p Polarity) Label() string {
	return p.String() + " " + p.Emoji()
}

// Classify maps a signed score to a label: above zero is Positive, below
// zero is Negative and exactly zero is Neutral.
func Classify(score float64) Polarity {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// ClassifyText scores the raw text with scorer and classifies the result.
func ClassifyText(scorer domain.PolarityScorer, text string) Polarity {
	return Classify(scorer.Score(text))
}

// Parse returns the polarity named by s as produced by String.
func Parse(s string) (Polarity, bool) {
	switch s {
	case "Positive":
		return Positive, true
	case "Negative":
		return Negative, true
	case "Neutral":
		return Neutral, true
	}
	return Neutral, false
}
