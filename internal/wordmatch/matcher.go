package wordmatch

import (
	"math"
	"sort"

	"github.com/ayusman/mudra/internal/classifier"
	"github.com/ayusman/mudra/internal/sequence"
)

// Scoring weights for the complex tier. They sum to 1.0.
const (
	gestureWeight      = 0.4
	movementWeight     = 0.3
	timingWeight       = 0.2
	completenessWeight = 0.1
)

// Letter-tier scoring constants.
const (
	exactMatchScore  = 0.95
	prefixBaseScore  = 0.6
	prefixBonusScale = 0.3
	partialScale     = 0.8
	partialMinRatio  = 0.5
	neutralTimingFit = 0.5
)

// Config holds the acceptance thresholds for word recognition.
type Config struct {
	// LetterTierThreshold is the minimum fingerspelling score to accept.
	LetterTierThreshold float64
	// ComplexTierThreshold is the minimum whole-sign confidence to accept.
	ComplexTierThreshold float64
	// SuggestionThreshold is the minimum confidence for ranked hints.
	SuggestionThreshold float64
	// MaxSuggestions bounds the ranked hint list.
	MaxSuggestions int
	// HistorySize bounds the recognition history.
	HistorySize int
}

// DefaultConfig returns the standard recognition thresholds.
func DefaultConfig() Config {
	return Config{
		LetterTierThreshold:  0.6,
		ComplexTierThreshold: 0.5,
		SuggestionThreshold:  0.3,
		MaxSuggestions:       5,
		HistorySize:          5,
	}
}

// Result is one recognized word with its scoring context.
type Result struct {
	Word         string             `json:"word"`
	Confidence   float64            `json:"confidence"`
	Category     string             `json:"category"`
	Description  string             `json:"description"`
	Gestures     []string           `json:"gestures"`
	Quality      classifier.Quality `json:"quality"`
	Completeness float64            `json:"completeness"`
}

// Matcher scores a sequence buffer against a fixed vocabulary. The
// vocabulary is shared and read-only; the recognition history is per
// matcher, so each session owns its own Matcher.
type Matcher struct {
	vocab   Vocabulary
	cfg     Config
	history []Result
}

// New builds a Matcher over the given vocabulary, validating it first.
func New(vocab Vocabulary, cfg Config) (*Matcher, error) {
	if err := vocab.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = DefaultConfig().MaxSuggestions
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}
	return &Matcher{vocab: vocab, cfg: cfg}, nil
}

// NewDefault builds a Matcher over the compiled-in vocabulary. The default
// vocabulary is covered by tests, so construction cannot fail.
func NewDefault() *Matcher {
	m, err := New(DefaultVocabulary(), DefaultConfig())
	if err != nil {
		panic("wordmatch: default vocabulary invalid: " + err.Error())
	}
	return m
}

// Recognize scores the buffer against both vocabulary tiers and returns
// the best candidate exceeding its tier threshold, or nil when nothing
// matches or the buffer is empty. The letter tier is evaluated first, so
// an exact score tie resolves toward fingerspelling. Accepted results are
// appended to the bounded recognition history.
func (m *Matcher) Recognize(buf *sequence.Buffer) *Result {
	if buf == nil || buf.Len() == 0 {
		return nil
	}

	tokens := buf.Tokens()
	movements := buf.Movements()
	duration := buf.DurationMs()

	var best *Result
	for i := range m.vocab.Fingerspelling {
		p := &m.vocab.Fingerspelling[i]
		score := letterScore(tokens, p.Gestures)
		if score <= m.cfg.LetterTierThreshold {
			continue
		}
		if best == nil || score > best.Confidence {
			best = m.resultFor(p, math.Min(score, p.BaseConfidence), completionRatio(len(tokens), len(p.Gestures)))
		}
	}

	for i := range m.vocab.Complex {
		p := &m.vocab.Complex[i]
		confidence, completeness := m.complexScore(p, tokens, movements, duration, buf.Len())
		if confidence <= m.cfg.ComplexTierThreshold {
			continue
		}
		if best == nil || confidence > best.Confidence {
			best = m.resultFor(p, confidence, completeness)
		}
	}

	if best != nil {
		m.history = append(m.history, *best)
		if len(m.history) > m.cfg.HistorySize {
			m.history = m.history[1:]
		}
	}

	return best
}

// Suggestions reruns the complex tier only, with a permissive threshold,
// and returns up to MaxSuggestions words ranked by descending confidence.
// It is independent of Recognize and leaves the history untouched.
func (m *Matcher) Suggestions(buf *sequence.Buffer) []string {
	if buf == nil || buf.Len() == 0 {
		return nil
	}

	tokens := buf.Tokens()
	movements := buf.Movements()
	duration := buf.DurationMs()

	type scored struct {
		word  string
		score float64
	}
	var candidates []scored
	for i := range m.vocab.Complex {
		p := &m.vocab.Complex[i]
		confidence, _ := m.complexScore(p, tokens, movements, duration, buf.Len())
		if confidence > m.cfg.SuggestionThreshold {
			candidates = append(candidates, scored{word: p.Word, score: confidence})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > m.cfg.MaxSuggestions {
		candidates = candidates[:m.cfg.MaxSuggestions]
	}

	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}

// History returns a copy of the recent accepted results, oldest first.
func (m *Matcher) History() []Result {
	return append([]Result(nil), m.history...)
}

func (m *Matcher) resultFor(p *Pattern, confidence, completeness float64) *Result {
	return &Result{
		Word:         p.Word,
		Confidence:   confidence,
		Category:     p.Category,
		Description:  p.Description,
		Gestures:     append([]string(nil), p.Gestures...),
		Quality:      classifier.QualityFor(confidence),
		Completeness: completeness,
	}
}

// letterScore compares buffered tokens against a fingerspelling pattern.
// An exact match scores highest; a correct positional prefix earns a
// progress-scaled score; anything else falls back to a position-wise match
// ratio that must clear half before it counts at all.
func letterScore(tokens, gestures []string) float64 {
	if len(tokens) == len(gestures) && prefixEqual(tokens, gestures) {
		return exactMatchScore
	}
	if len(tokens) < len(gestures) && prefixEqual(tokens, gestures) {
		return prefixBaseScore + completionRatio(len(tokens), len(gestures))*prefixBonusScale
	}

	n := len(tokens)
	if len(gestures) < n {
		n = len(gestures)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if tokens[i] == gestures[i] {
			matches++
		}
	}
	denom := len(tokens)
	if len(gestures) > denom {
		denom = len(gestures)
	}
	ratio := float64(matches) / float64(denom)
	if ratio > partialMinRatio {
		return ratio * partialScale
	}
	return 0
}

func prefixEqual(tokens, gestures []string) bool {
	for i := range tokens {
		if i >= len(gestures) || tokens[i] != gestures[i] {
			return false
		}
	}
	return true
}

func completionRatio(have, want int) float64 {
	if want == 0 {
		return 0
	}
	r := float64(have) / float64(want)
	if r > 1 {
		r = 1
	}
	return r
}

// complexScore computes the weighted whole-sign score:
//
//	0.4*gesture + 0.3*movement + 0.2*timing + 0.1*completeness
//
// scaled by the pattern's base confidence. Malformed or missing movement
// data degrades to neutral component values; the function is total.
func (m *Matcher) complexScore(p *Pattern, tokens []string, movements []sequence.MovementPattern, durationMs int64, entries int) (confidence, completeness float64) {
	gesture := m.gestureMatch(p, tokens)
	movement := movementMatch(p, movements)
	timing := timingMatch(p, durationMs, entries)
	completeness = completenessOf(p, len(tokens), len(movements))

	score := gestureWeight*gesture + movementWeight*movement + timingWeight*timing + completenessWeight*completeness
	return score * p.BaseConfidence, completeness
}

// gestureMatch is the fraction of pattern tokens found, directly or via a
// synonym, inside the most recent window of buffered tokens sized to the
// pattern.
func (m *Matcher) gestureMatch(p *Pattern, tokens []string) float64 {
	window := tokens
	if len(window) > len(p.Gestures) {
		window = window[len(window)-len(p.Gestures):]
	}

	found := 0
	for _, g := range p.Gestures {
		for _, tok := range window {
			if m.tokenMatches(g, tok) {
				found++
				break
			}
		}
	}
	return float64(found) / float64(len(p.Gestures))
}

func (m *Matcher) tokenMatches(expected, actual string) bool {
	if expected == actual {
		return true
	}
	for _, alt := range m.vocab.Synonyms[expected] {
		if alt == actual {
			return true
		}
	}
	return false
}

// movementMatch is the fraction of expected movements found anywhere in
// the buffered movement list. The type must match exactly; the direction
// only when the pattern specifies one. A pattern without movement
// expectations is trivially satisfied.
func movementMatch(p *Pattern, movements []sequence.MovementPattern) float64 {
	if len(p.Movements) == 0 {
		return 1
	}

	found := 0
	for _, want := range p.Movements {
		for _, got := range movements {
			if got.Type != want.Type {
				continue
			}
			if want.Direction != "" && got.Direction != want.Direction {
				continue
			}
			found++
			break
		}
	}
	return float64(found) / float64(len(p.Movements))
}

// timingMatch rates how close the buffered span is to the pattern's
// expected duration. With fewer than two entries there is no span yet and
// the component stays neutral.
func timingMatch(p *Pattern, durationMs int64, entries int) float64 {
	if entries < 2 || durationMs <= 0 || p.DurationMs <= 0 {
		return neutralTimingFit
	}
	actual := float64(durationMs)
	expected := float64(p.DurationMs)
	return math.Min(actual, expected) / math.Max(actual, expected)
}

// completenessOf averages how much of the expected token and movement
// counts the buffer has accumulated, each capped at 1.
func completenessOf(p *Pattern, tokenCount, movementCount int) float64 {
	tokenPart := completionRatio(tokenCount, len(p.Gestures))
	movementPart := 1.0
	if len(p.Movements) > 0 {
		movementPart = completionRatio(movementCount, len(p.Movements))
	}
	return (tokenPart + movementPart) / 2
}
