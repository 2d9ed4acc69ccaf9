// Package classifier maps single-frame hand landmarks to fingerspelling
// letters using ordered geometric rules with temporal stabilization.
package classifier

import (
	"math"

	"github.com/ayusman/mudra/internal/landmark"
)

// Result is the classification outcome for one frame.
type Result struct {
	Letter      string  `json:"letter"`
	Confidence  float64 `json:"confidence"`
	Quality     Quality `json:"quality"`
	Description string  `json:"description"`
}

// Classifier classifies hand snapshots into letters. It keeps a short
// rolling history of recent letters to absorb single-frame jitter, so one
// instance belongs to one session and is not safe for concurrent use.
type Classifier struct {
	cfg     Config
	history []string
}

// New creates a Classifier with the default thresholds.
func New() *Classifier {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Classifier with the given thresholds.
func NewWithConfig(cfg Config) *Classifier {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}
	return &Classifier{cfg: cfg}
}

// Classify maps one hand snapshot to a letter result. An invalid snapshot
// (missing, wrong length, non-finite coordinates) yields the zero-confidence
// sentinel result; Classify never panics on malformed input.
func (c *Classifier) Classify(h landmark.Hand) Result {
	if !h.Valid() {
		return Result{Quality: QualityPoor}
	}

	f := extractFeatures(h, c.cfg)

	var res Result
	for _, r := range letterRules {
		if r.match(&f, c.cfg) {
			res = Result{
				Letter:      r.letter,
				Confidence:  r.confidence,
				Quality:     QualityFor(r.confidence),
				Description: r.description,
			}
			break
		}
	}

	return c.stabilize(res)
}

// stabilize pushes confident letters into the rolling history and, once a
// majority of the window agrees, overrides the frame's letter with the
// mode and rewards the agreement with a confidence bonus.
func (c *Classifier) stabilize(res Result) Result {
	if res.Confidence <= c.cfg.StabilizeMinConfidence {
		return res
	}

	c.history = append(c.history, res.Letter)
	if len(c.history) > c.cfg.HistorySize {
		c.history = c.history[1:]
	}

	mode, freq := modeOf(c.history)
	if freq >= (c.cfg.HistorySize+1)/2 {
		res.Letter = mode
		res.Confidence = math.Min(1.0, res.Confidence+c.cfg.StabilizeBonus)
		res.Quality = QualityFor(res.Confidence)
	}

	return res
}

// ClearHistory resets the stabilization window. Callers must invoke this
// when no hand is detected; the classifier has no implicit timeout.
func (c *Classifier) ClearHistory() {
	c.history = c.history[:0]
}

// modeOf returns the most frequent entry and its count. Ties go to the
// entry seen earliest in the window.
func modeOf(entries []string) (string, int) {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e]++
	}

	var mode string
	best := 0
	for _, e := range entries {
		if counts[e] > best {
			mode = e
			best = counts[e]
		}
	}
	return mode, best
}
