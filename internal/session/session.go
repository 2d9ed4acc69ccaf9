// Package session wires the recognition components together per user: one
// classifier, one sequence buffer and one matcher per active signer.
package session

import (
	"github.com/ayusman/mudra/internal/classifier"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/predict"
	"github.com/ayusman/mudra/internal/sequence"
	"github.com/ayusman/mudra/internal/wordmatch"
)

// Session owns the mutable recognition state for one signer. It is driven
// by an external per-frame loop and is not safe for concurrent calls;
// independent signers get independent sessions.
type Session struct {
	id         string
	classifier *classifier.Classifier
	buffer     *sequence.Buffer
	matcher    *wordmatch.Matcher
	predictor  *predict.Predictor
}

// Status combines the buffer snapshot with current word hints.
type Status struct {
	sequence.Status
	Suggestions []string `json:"suggestions"`
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// ProcessFrame classifies one hand snapshot. It does not buffer the
// result; the caller decides which letters become sequence tokens.
func (s *Session) ProcessFrame(h landmark.Hand) classifier.Result {
	return s.classifier.Classify(h)
}

// HandLost resets the classifier's stabilization window. Callers invoke
// this on frames with no detected hand.
func (s *Session) HandLost() {
	s.classifier.ClearHistory()
}

// PushToken appends a classified token to the sequence buffer and returns
// the movement pattern derived from the updated trajectory. Timestamps
// come from the caller's clock and must be non-decreasing.
func (s *Session) PushToken(token string, h landmark.Hand, timestampMs int64) sequence.MovementPattern {
	return s.buffer.Add(token, h, timestampMs)
}

// AttemptWord runs word recognition over the current buffer. It returns
// nil when nothing scores above threshold; that is a normal outcome, not
// an error.
func (s *Session) AttemptWord() *wordmatch.Result {
	return s.matcher.Recognize(s.buffer)
}

// Suggestions returns ranked "did you mean" word hints for the current
// buffer contents.
func (s *Session) Suggestions() []string {
	return s.matcher.Suggestions(s.buffer)
}

// RecognitionHistory returns recently accepted words, oldest first.
func (s *Session) RecognitionHistory() []wordmatch.Result {
	return s.matcher.History()
}

// Status reports the buffer state together with current suggestions.
func (s *Session) Status() Status {
	return Status{
		Status:      s.buffer.Status(),
		Suggestions: s.matcher.Suggestions(s.buffer),
	}
}

// ClearSequence empties the sequence buffer.
func (s *Session) ClearSequence() {
	s.buffer.Clear()
}

// Predictor returns the shared word-completion helper.
func (s *Session) Predictor() *predict.Predictor {
	return s.predictor
}
