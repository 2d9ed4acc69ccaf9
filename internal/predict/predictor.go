// Package predict offers lightweight word completion over a flat word
// list, independent of the gesture recognition pipeline.
package predict

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxPredictions bounds every prediction list.
const maxPredictions = 5

// defaultNextLetters are the starting-letter hints offered before the
// user has fingerspelled anything.
var defaultNextLetters = []string{"A", "H", "I", "T", "W"}

// Predictor completes partial fingerspelled words against a fixed
// vocabulary. It holds no mutable state and is safe to share.
type Predictor struct {
	words []string
}

// New creates a Predictor over the given words. Words are matched
// case-insensitively and reported uppercase, in the given order.
func New(words []string) *Predictor {
	upper := make([]string, len(words))
	for i, w := range words {
		upper[i] = strings.ToUpper(w)
	}
	return &Predictor{words: upper}
}

// NewDefault creates a Predictor over the built-in word list.
func NewDefault() *Predictor {
	return New(defaultWords)
}

// Predictions returns up to five completions for the given partial word.
// Prefix matches come first, then substring matches, vocabulary order
// preserved within each group. The exact word itself is never suggested.
// An empty input yields the first five vocabulary entries.
func (p *Predictor) Predictions(partial string) []string {
	up := strings.ToUpper(partial)
	if up == "" {
		n := maxPredictions
		if len(p.words) < n {
			n = len(p.words)
		}
		return append([]string(nil), p.words[:n]...)
	}

	var prefixed, contains []string
	for _, w := range p.words {
		if w == up {
			continue
		}
		switch {
		case strings.HasPrefix(w, up):
			prefixed = append(prefixed, w)
		case strings.Contains(w, up):
			contains = append(contains, w)
		}
	}

	out := append(prefixed, contains...)
	if len(out) > maxPredictions {
		out = out[:maxPredictions]
	}
	return out
}

// IsLikelyComplete reports whether the word appears in the vocabulary.
func (p *Predictor) IsLikelyComplete(word string) bool {
	up := strings.ToUpper(word)
	for _, w := range p.words {
		if w == up {
			return true
		}
	}
	return false
}

// CompletionConfidence rates how complete the given word looks: exact
// vocabulary membership is certain, a top prediction extending the word
// suggests it is still in progress, anything else is a guess.
func (p *Predictor) CompletionConfidence(word string) float64 {
	if p.IsLikelyComplete(word) {
		return 1.0
	}
	preds := p.Predictions(word)
	if len(preds) > 0 && strings.HasPrefix(preds[0], strings.ToUpper(word)) {
		return 0.7
	}
	return 0.3
}

// NextLetterSuggestions returns the distinct letters that could follow the
// partial word among current predictions, in prediction order. An empty
// partial yields the fixed default starting letters.
func (p *Predictor) NextLetterSuggestions(partial string) []string {
	up := strings.ToUpper(partial)
	if up == "" {
		return append([]string(nil), defaultNextLetters...)
	}

	seen := make(map[byte]bool)
	var letters []string
	for _, pred := range p.Predictions(up) {
		if !strings.HasPrefix(pred, up) || len(pred) <= len(up) {
			continue
		}
		next := pred[len(up)]
		if !seen[next] {
			seen[next] = true
			letters = append(letters, string(next))
		}
	}
	return letters
}

// Nearest returns the vocabulary word closest to the input by edit
// distance, with a similarity in [0,1]. Useful for misfingerspelled words
// that prefix matching cannot reach.
func (p *Predictor) Nearest(word string) (string, float64) {
	up := strings.ToUpper(word)
	if up == "" || len(p.words) == 0 {
		return "", 0
	}

	best := ""
	bestDist := -1
	for _, w := range p.words {
		dist := levenshtein.ComputeDistance(up, w)
		if bestDist < 0 || dist < bestDist {
			best = w
			bestDist = dist
		}
	}

	maxLen := len(up)
	if len(best) > maxLen {
		maxLen = len(best)
	}
	if maxLen == 0 {
		return best, 1
	}
	return best, 1 - float64(bestDist)/float64(maxLen)
}
