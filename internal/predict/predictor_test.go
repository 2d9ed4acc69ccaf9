package predict

import (
	"math"
	"strings"
	"testing"
)

func TestPredictor_PredictionsPrefix(t *testing.T) {
	p := NewDefault()

	preds := p.Predictions("TH")
	if len(preds) > 5 {
		t.Fatalf("expected at most 5 predictions, got %d", len(preds))
	}
	if len(preds) == 0 {
		t.Fatal("expected predictions for TH")
	}

	// Prefix matches fill the list before any substring-only match.
	for i, w := range preds {
		if !strings.HasPrefix(w, "TH") {
			t.Errorf("prediction %d (%q) is not a TH-prefix match", i, w)
		}
	}
	if preds[0] != "THANK" || preds[1] != "THANKS" {
		t.Errorf("expected vocabulary order THANK, THANKS first, got %v", preds)
	}
}

func TestPredictor_PredictionsSubstring(t *testing.T) {
	p := NewDefault()

	preds := p.Predictions("ANK")
	want := []string{"THANK", "THANKS"}
	if len(preds) != len(want) {
		t.Fatalf("expected %v, got %v", want, preds)
	}
	for i := range want {
		if preds[i] != want[i] {
			t.Errorf("expected %v, got %v", want, preds)
			break
		}
	}
}

func TestPredictor_PredictionsEmptyPrefix(t *testing.T) {
	p := NewDefault()

	preds := p.Predictions("")
	if len(preds) != 5 {
		t.Fatalf("expected first 5 vocabulary entries, got %d", len(preds))
	}
	for i, w := range defaultWords[:5] {
		if preds[i] != w {
			t.Errorf("expected %q at position %d, got %q", w, i, preds[i])
		}
	}
}

func TestPredictor_PredictionsExcludeSelf(t *testing.T) {
	p := NewDefault()

	for _, w := range p.Predictions("HI") {
		if w == "HI" {
			t.Error("expected the exact word itself to be excluded")
		}
	}
}

func TestPredictor_IsLikelyComplete(t *testing.T) {
	p := NewDefault()

	if !p.IsLikelyComplete("HELLO") {
		t.Error("expected HELLO to be complete")
	}
	if !p.IsLikelyComplete("hello") {
		t.Error("expected membership check to be case-insensitive")
	}
	if p.IsLikelyComplete("HELL") {
		t.Error("expected HELL to be incomplete")
	}
}

func TestPredictor_CompletionConfidence(t *testing.T) {
	p := NewDefault()

	if got := p.CompletionConfidence("HELLO"); got != 1.0 {
		t.Errorf("expected 1.0 for exact membership, got %f", got)
	}
	if got := p.CompletionConfidence("THAN"); got != 0.7 {
		t.Errorf("expected 0.7 when the top prediction extends the word, got %f", got)
	}
	if got := p.CompletionConfidence("OW"); got != 0.3 {
		t.Errorf("expected 0.3 for substring-only matches, got %f", got)
	}
	if got := p.CompletionConfidence("XQZJ"); got != 0.3 {
		t.Errorf("expected 0.3 with no predictions, got %f", got)
	}
}

func TestPredictor_NextLetterSuggestions(t *testing.T) {
	p := NewDefault()

	letters := p.NextLetterSuggestions("")
	want := []string{"A", "H", "I", "T", "W"}
	if len(letters) != len(want) {
		t.Fatalf("expected default letters %v, got %v", want, letters)
	}
	for i := range want {
		if letters[i] != want[i] {
			t.Errorf("expected default letters %v, got %v", want, letters)
			break
		}
	}

	// Predictions for TH are THANK, THANKS, THAT, THE, THIS.
	letters = p.NextLetterSuggestions("TH")
	want = []string{"A", "E", "I"}
	if len(letters) != len(want) {
		t.Fatalf("expected %v, got %v", want, letters)
	}
	for i := range want {
		if letters[i] != want[i] {
			t.Errorf("expected %v, got %v", want, letters)
			break
		}
	}
}

func TestPredictor_Nearest(t *testing.T) {
	p := NewDefault()

	word, similarity := p.Nearest("HELO")
	if word != "HELLO" {
		t.Errorf("expected HELLO as nearest word, got %q", word)
	}
	if math.Abs(similarity-0.8) > 1e-9 {
		t.Errorf("expected similarity 0.8, got %f", similarity)
	}

	word, similarity = p.Nearest("")
	if word != "" || similarity != 0 {
		t.Errorf("expected empty result for empty input, got %q/%f", word, similarity)
	}

	// An exact word is its own nearest neighbor.
	word, similarity = p.Nearest("water")
	if word != "WATER" || similarity != 1.0 {
		t.Errorf("expected WATER/1.0, got %q/%f", word, similarity)
	}
}

func TestPredictor_CustomWordList(t *testing.T) {
	p := New([]string{"alpha", "beta"})

	preds := p.Predictions("AL")
	if len(preds) != 1 || preds[0] != "ALPHA" {
		t.Errorf("expected [ALPHA], got %v", preds)
	}
	if !p.IsLikelyComplete("BETA") {
		t.Error("expected custom words to be uppercased for matching")
	}
}
