package classifier

import (
	"testing"

	"github.com/ayusman/mudra/internal/landmark"
)

func TestClassifier_PresetPoses(t *testing.T) {
	tests := []struct {
		name   string
		hand   landmark.Hand
		letter string
	}{
		{"thumbs up", landmark.ThumbsUp(), "A"},
		{"flat hand", landmark.FlatHand(), "B"},
		{"index point", landmark.IndexPoint(), "D"},
		{"curled knuckles", landmark.CurledKnuckles(), "E"},
		{"ok sign", landmark.OKSign(), "F"},
		{"two together", landmark.TwoTogether(), "U"},
		{"pinky up", landmark.PinkyUp(), "I"},
		{"L shape", landmark.LShape(), "L"},
		{"rounded O", landmark.RoundedO(), "O"},
		{"crossed fingers", landmark.CrossedFingers(), "R"},
		{"closed fist", landmark.Fist(), "S"},
		{"victory", landmark.Victory(), "V"},
		{"three up", landmark.ThreeUp(), "W"},
		{"hang loose", landmark.HangLoose(), "Y"},
		{"open palm", landmark.OpenPalm(), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			res := c.Classify(tt.hand)
			if res.Letter != tt.letter {
				t.Errorf("expected letter %q, got %q (%s)", tt.letter, res.Letter, res.Description)
			}
			if res.Confidence < 0 || res.Confidence > 1 {
				t.Errorf("confidence %f outside [0,1]", res.Confidence)
			}
			if res.Quality != QualityFor(res.Confidence) {
				t.Errorf("quality %q inconsistent with confidence %f", res.Quality, res.Confidence)
			}
		})
	}
}

func TestClassifier_InvalidInput(t *testing.T) {
	c := New()

	for _, hand := range []landmark.Hand{nil, {}, make(landmark.Hand, 19), make(landmark.Hand, 22)} {
		res := c.Classify(hand)
		if res.Letter != "" {
			t.Errorf("expected empty letter for invalid input, got %q", res.Letter)
		}
		if res.Confidence != 0 {
			t.Errorf("expected zero confidence for invalid input, got %f", res.Confidence)
		}
		if res.Quality != QualityPoor {
			t.Errorf("expected poor quality for invalid input, got %q", res.Quality)
		}
	}
}

func TestClassifier_StableUnderRepetition(t *testing.T) {
	c := New()
	pose := landmark.Victory()

	var results []Result
	for i := 0; i < 5; i++ {
		results = append(results, c.Classify(pose))
	}

	// Once the history holds a majority, the output must not oscillate.
	for i := 3; i < 5; i++ {
		if results[i] != results[i-1] {
			t.Errorf("output oscillated between frames %d and %d: %+v vs %+v", i-1, i, results[i-1], results[i])
		}
	}

	final := results[4]
	if final.Letter != "V" {
		t.Errorf("expected stabilized letter V, got %q", final.Letter)
	}
	// 0.9 rule confidence plus the stabilization bonus.
	if final.Confidence != 1.0 {
		t.Errorf("expected capped confidence 1.0, got %f", final.Confidence)
	}
	if final.Quality != QualityExcellent {
		t.Errorf("expected excellent quality, got %q", final.Quality)
	}
}

func TestClassifier_AbsorbsSingleFrameJitter(t *testing.T) {
	c := New()

	for i := 0; i < 4; i++ {
		c.Classify(landmark.Victory())
	}

	// One noisy frame reading R must be overridden by the V majority.
	res := c.Classify(landmark.CrossedFingers())
	if res.Letter != "V" {
		t.Errorf("expected history majority V to override jitter, got %q", res.Letter)
	}
}

func TestClassifier_ClearHistory(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.Classify(landmark.Victory())
	}

	c.ClearHistory()
	if len(c.history) != 0 {
		t.Errorf("expected empty history after clear, got %d entries", len(c.history))
	}

	// A fresh majority must be rebuilt from scratch.
	res := c.Classify(landmark.CrossedFingers())
	if res.Letter != "R" {
		t.Errorf("expected R immediately after clear, got %q", res.Letter)
	}
}

func TestClassifier_LowConfidenceSkipsHistory(t *testing.T) {
	c := New()

	// The open-palm fallback scores 0.5, at the stabilization cutoff, so
	// it must not enter the history.
	c.Classify(landmark.OpenPalm())
	if len(c.history) != 0 {
		t.Errorf("expected history to stay empty below the cutoff, got %d entries", len(c.history))
	}
}

func TestQualityFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Quality
	}{
		{0.95, QualityExcellent},
		{0.9, QualityExcellent},
		{0.89, QualityGood},
		{0.7, QualityGood},
		{0.69, QualityFair},
		{0.5, QualityFair},
		{0.49, QualityPoor},
		{0, QualityPoor},
	}

	for _, tt := range tests {
		if got := QualityFor(tt.confidence); got != tt.want {
			t.Errorf("QualityFor(%f) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestLetterRules_TerminalConfidenceRange(t *testing.T) {
	for i, r := range letterRules {
		if r.confidence < 0.2 || r.confidence > 0.95 {
			t.Errorf("rule %d (%s) confidence %f outside [0.2,0.95]", i, r.letter, r.confidence)
		}
	}

	// The final rule is the unconditional fallback.
	last := letterRules[len(letterRules)-1]
	if last.letter != "?" || !last.match(&features{}, DefaultConfig()) {
		t.Error("expected unconditional fallback rule at the end of the table")
	}
}
