package sequence

import (
	"math"

	"github.com/ayusman/mudra/internal/landmark"
)

// Entry is one buffered (token, timestamp, landmarks) triple.
type Entry struct {
	Token     string
	Timestamp int64 // milliseconds, caller-supplied monotone clock
	Landmarks landmark.Hand
}

// Status is a snapshot of the buffer for presentation layers.
type Status struct {
	Length     int    `json:"length"`
	DurationMs int64  `json:"duration_ms"`
	LastToken  string `json:"last_token"`
}

// Buffer is a bounded FIFO of gesture tokens with a parallel list of
// derived movement patterns. A gap longer than Config.GapMs between tokens
// resets it. One Buffer belongs to one session; it never reads a wall
// clock and is not safe for concurrent use.
type Buffer struct {
	cfg       Config
	detector  *Detector
	entries   []Entry
	movements []MovementPattern
}

// NewBuffer creates a Buffer with the default thresholds.
func NewBuffer() *Buffer {
	return NewBufferWithConfig(DefaultConfig())
}

// NewBufferWithConfig creates a Buffer with the given thresholds.
func NewBufferWithConfig(cfg Config) *Buffer {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.GapMs <= 0 {
		cfg.GapMs = DefaultConfig().GapMs
	}
	return &Buffer{
		cfg:       cfg,
		detector:  NewDetector(cfg),
		entries:   make([]Entry, 0, cfg.Capacity),
		movements: make([]MovementPattern, 0, cfg.Capacity),
	}
}

// Add appends a token with its landmark snapshot and timestamp, evicting
// the oldest entry beyond capacity and clearing the buffer first when the
// gap since the previous token exceeds the reset window. It returns the
// movement pattern derived from the trailing wrist trajectory.
func (b *Buffer) Add(token string, h landmark.Hand, timestampMs int64) MovementPattern {
	if n := len(b.entries); n > 0 && timestampMs-b.entries[n-1].Timestamp > b.cfg.GapMs {
		b.Clear()
	}

	// Snapshot the landmarks: the caller may reuse its slice next frame.
	var snapshot landmark.Hand
	if len(h) > 0 {
		snapshot = append(landmark.Hand(nil), h...)
	}

	b.entries = append(b.entries, Entry{Token: token, Timestamp: timestampMs, Landmarks: snapshot})
	movement := b.detector.Detect(b.trailingWrists())
	b.movements = append(b.movements, movement)

	if len(b.entries) > b.cfg.Capacity {
		b.entries = b.entries[1:]
		b.movements = b.movements[1:]
	}

	return movement
}

// trailingWrists collects the wrist positions of the most recent valid
// snapshots, oldest first, up to the trajectory window. A snapshot is valid
// when it is non-empty and its wrist coordinates are finite; truncated
// hands still contribute their wrist.
func (b *Buffer) trailingWrists() []landmark.Point3D {
	wrists := make([]landmark.Point3D, 0, b.cfg.TrajectorySamples)
	for i := len(b.entries) - 1; i >= 0 && len(wrists) < b.cfg.TrajectorySamples; i-- {
		h := b.entries[i].Landmarks
		if len(h) == 0 {
			continue
		}
		w := h[landmark.Wrist]
		if math.IsNaN(w.X) || math.IsNaN(w.Y) || math.IsNaN(w.Z) {
			continue
		}
		wrists = append(wrists, w)
	}
	// Reverse into chronological order.
	for i, j := 0, len(wrists)-1; i < j; i, j = i+1, j-1 {
		wrists[i], wrists[j] = wrists[j], wrists[i]
	}
	return wrists
}

// Clear empties the buffer and its movement list.
func (b *Buffer) Clear() {
	b.entries = b.entries[:0]
	b.movements = b.movements[:0]
}

// Len returns the number of buffered tokens.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Tokens returns the buffered tokens, oldest first.
func (b *Buffer) Tokens() []string {
	tokens := make([]string, len(b.entries))
	for i, e := range b.entries {
		tokens[i] = e.Token
	}
	return tokens
}

// Entries returns a copy of the buffered entries, oldest first.
func (b *Buffer) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Movements returns a copy of the derived movement patterns, oldest first.
func (b *Buffer) Movements() []MovementPattern {
	return append([]MovementPattern(nil), b.movements...)
}

// DurationMs returns the time spanned by the buffered tokens.
func (b *Buffer) DurationMs() int64 {
	if len(b.entries) < 2 {
		return 0
	}
	return b.entries[len(b.entries)-1].Timestamp - b.entries[0].Timestamp
}

// Status reports the buffer's length, span and most recent token.
func (b *Buffer) Status() Status {
	s := Status{Length: len(b.entries), DurationMs: b.DurationMs()}
	if n := len(b.entries); n > 0 {
		s.LastToken = b.entries[n-1].Token
	}
	return s
}
