package sentiment

import (
	"regexp"
	"strings"
)

// LexiconScorer scores text by averaging the polarity of the lexicon words it
// contains. Intensifiers scale the following sentiment word and negations
// flip and dampen it.
type LexiconScorer struct {
	lexicon      map[string]float64
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// NewLexiconScorer creates a scorer with the built-in English lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		lexicon:      defaultLexicon(),
		intensifiers: defaultIntensifiers(),
		negations:    defaultNegations(),
	}
}

var wordRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// negationFactor is applied to a sentiment word preceded by a negation.
const negationFactor = -0.5

// Score returns the mean polarity of the assessed words in [-1, 1], or 0 when
// no word of text is in the lexicon.
func (s *LexiconScorer) Score(text string) float64 {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)
	var (
		sum      float64
		assessed int
		modifier = 1.0
		negate   bool
	)
	for _, tok := range tokens {
		tok = strings.ReplaceAll(tok, "’", "'")
		if s.isNegation(tok) {
			negate = true
			continue
		}
		if m, ok := s.intensifiers[tok]; ok {
			modifier *= m
			continue
		}
		if p, ok := s.lexicon[tok]; ok {
			v := p * modifier
			if negate {
				v *= negationFactor
			}
			sum += clamp(v)
			assessed++
		}
		modifier = 1.0
		negate = false
	}
	if assessed == 0 {
		return 0
	}
	return clamp(sum / float64(assessed))
}

func (s *LexiconScorer) isNegation(tok string) bool {
	if _, ok := s.negations[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't")
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func defaultNegations() map[string]struct{} {
	words := []string{"not", "no", "never", "neither", "nor", "without", "cannot"}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func defaultIntensifiers() map[string]float64 {
	return map[string]float64{
		"very":       1.3,
		"really":     1.2,
		"extremely":  1.5,
		"incredibly": 1.4,
		"truly":      1.2,
		"so":         1.2,
		"too":        1.1,
		"quite":      1.1,
		"absolutely": 1.4,
		"highly":     1.3,
		"totally":    1.3,
		"somewhat":   0.7,
		"slightly":   0.5,
		"barely":     0.4,
		"fairly":     0.8,
	}
}

func defaultLexicon() map[string]float64 {
	return map[string]float64{
		// positive
		"love":        0.5,
		"loved":       0.7,
		"loves":       0.5,
		"lovely":      0.5,
		"like":        0.2,
		"liked":       0.3,
		"enjoy":       0.4,
		"enjoyed":     0.5,
		"amazing":     0.6,
		"great":       0.8,
		"good":        0.7,
		"nice":        0.6,
		"fantastic":   0.4,
		"masterpiece": 0.8,
		"wonderful":   1.0,
		"stellar":     0.6,
		"brilliant":   0.9,
		"best":        1.0,
		"better":      0.5,
		"awesome":     1.0,
		"excellent":   1.0,
		"perfect":     1.0,
		"happy":       0.8,
		"glad":        0.5,
		"beautiful":   0.85,
		"fun":         0.3,
		"funny":       0.25,
		"interesting": 0.5,
		"impressive":  1.0,
		"superb":      1.0,
		"delightful":  1.0,
		"pleasant":    0.73,
		"charming":    0.5,
		"enjoyable":   0.4,
		"outstanding": 0.5,
		"favorite":    0.5,
		"favourite":   0.5,
		"recommend":   0.3,
		"thrilling":   0.6,
		"moving":      0.4,
		"gripping":    0.5,
		"clever":      0.4,
		"smart":       0.21,
		"fresh":       0.3,
		"solid":       0.2,
		"success":     0.3,
		"successful":  0.75,
		"win":         0.8,
		"joy":         0.8,
		"kind":        0.6,
		"helpful":     0.5,
		"easy":        0.43,
		"fast":        0.2,
		"clean":       0.37,
		"elegant":     0.5,
		"remarkable":  0.75,
		"incredible":  0.9,
		"satisfying":  0.5,
		"thank":       0.2,
		"thanks":      0.2,
		"well":        0.1,
		// negative
		"hate":          -0.8,
		"hated":         -0.9,
		"hates":         -0.8,
		"dislike":       -0.4,
		"boring":        -1.0,
		"bored":         -0.5,
		"worst":         -1.0,
		"worse":         -0.4,
		"terrible":      -1.0,
		"disappointing": -0.6,
		"disappointed":  -0.75,
		"predictable":   -0.3,
		"awful":         -1.0,
		"poor":          -0.4,
		"bad":           -0.7,
		"horrible":      -1.0,
		"flaws":         -0.3,
		"flawed":        -0.4,
		"sad":           -0.5,
		"angry":         -0.5,
		"annoying":      -0.8,
		"ugly":          -0.7,
		"stupid":        -0.8,
		"dull":          -0.3,
		"weak":          -0.4,
		"mediocre":      -0.5,
		"waste":         -0.2,
		"wasted":        -0.2,
		"useless":       -0.5,
		"broken":        -0.4,
		"slow":          -0.3,
		"painful":       -0.7,
		"confusing":     -0.3,
		"mess":          -0.5,
		"messy":         -0.5,
		"fail":          -0.5,
		"failed":        -0.5,
		"failure":       -0.3,
		"wrong":         -0.5,
		"problem":       -0.2,
		"difficult":     -0.5,
		"hard":          -0.3,
		"pathetic":      -1.0,
		"disgusting":    -1.0,
		"dreadful":      -1.0,
		"unpleasant":    -0.6,
		"unfortunately": -0.5,
		"tedious":       -0.6,
		"overrated":     -0.5,
		"cheap":         -0.2,
		"lame":          -0.5,
		"nasty":         -1.0,
		"sick":          -0.7,
		"fear":          -0.4,
		"scary":         -0.5,
		"ridiculous":    -0.33,
		"silly":         -0.2,
	}
}
