// Package wordmatch scores buffered gesture sequences against a static
// two-tier vocabulary of fingerspelling and whole-sign patterns.
package wordmatch

import (
	"fmt"

	"github.com/ayusman/mudra/internal/sequence"
)

// Pattern is one immutable vocabulary entry. Fingerspelling patterns list
// their letters as gestures and carry no movements; complex patterns pair
// named hand-shape tokens with expected movements.
type Pattern struct {
	Word           string
	Gestures       []string
	DurationMs     int64
	Movements      []sequence.MovementPattern
	BaseConfidence float64
	Category       string
	Description    string
}

// Vocabulary is the read-only pattern table a Matcher is built from.
// Synonyms maps a canonical gesture token to the alternate tokens a
// classifier may emit for the same hand shape.
type Vocabulary struct {
	Fingerspelling []Pattern
	Complex        []Pattern
	Synonyms       map[string][]string
}

// Validate checks structural soundness of the vocabulary so that typos in
// the table surface at construction instead of as silent scoring misses.
func (v Vocabulary) Validate() error {
	known := make(map[string]bool)
	for _, set := range [][]Pattern{v.Fingerspelling, v.Complex} {
		for _, p := range set {
			if p.Word == "" {
				return fmt.Errorf("vocabulary entry with empty word")
			}
			if len(p.Gestures) == 0 {
				return fmt.Errorf("pattern %q has no gestures", p.Word)
			}
			if p.BaseConfidence <= 0 || p.BaseConfidence > 1 {
				return fmt.Errorf("pattern %q has base confidence %v outside (0,1]", p.Word, p.BaseConfidence)
			}
			for _, g := range p.Gestures {
				known[g] = true
			}
		}
	}

	for _, p := range v.Complex {
		for _, m := range p.Movements {
			switch m.Type {
			case sequence.MovementStatic, sequence.MovementLinear, sequence.MovementCircular:
			default:
				return fmt.Errorf("pattern %q expects unknown movement type %q", p.Word, m.Type)
			}
		}
	}

	for canonical := range v.Synonyms {
		if !known[canonical] {
			return fmt.Errorf("synonym entry %q does not appear in any pattern", canonical)
		}
	}

	return nil
}

// DefaultVocabulary returns the compiled-in sign vocabulary. Extending it
// is a code change, not runtime configuration.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Fingerspelling: []Pattern{
			{Word: "HI", Gestures: []string{"H", "I"}, DurationMs: 1500, BaseConfidence: 0.95, Category: "greeting", Description: "Fingerspelled HI"},
			{Word: "OK", Gestures: []string{"O", "K"}, DurationMs: 1500, BaseConfidence: 0.95, Category: "response", Description: "Fingerspelled OK"},
			{Word: "NO", Gestures: []string{"N", "O"}, DurationMs: 1500, BaseConfidence: 0.95, Category: "response", Description: "Fingerspelled NO"},
			{Word: "SO", Gestures: []string{"S", "O"}, DurationMs: 1500, BaseConfidence: 0.95, Category: "common", Description: "Fingerspelled SO"},
			{Word: "YES", Gestures: []string{"Y", "E", "S"}, DurationMs: 2000, BaseConfidence: 0.95, Category: "response", Description: "Fingerspelled YES"},
			{Word: "BYE", Gestures: []string{"B", "Y", "E"}, DurationMs: 2000, BaseConfidence: 0.95, Category: "greeting", Description: "Fingerspelled BYE"},
			{Word: "ASL", Gestures: []string{"A", "S", "L"}, DurationMs: 2000, BaseConfidence: 0.95, Category: "common", Description: "Fingerspelled ASL"},
			{Word: "WOW", Gestures: []string{"W", "O", "W"}, DurationMs: 2000, BaseConfidence: 0.95, Category: "emotion", Description: "Fingerspelled WOW"},
			{Word: "FUN", Gestures: []string{"F", "U", "N"}, DurationMs: 2000, BaseConfidence: 0.95, Category: "emotion", Description: "Fingerspelled FUN"},
			{Word: "SAD", Gestures: []string{"S", "A", "D"}, DurationMs: 2000, BaseConfidence: 0.95, Category: "emotion", Description: "Fingerspelled SAD"},
			{Word: "LOVE", Gestures: []string{"L", "O", "V", "E"}, DurationMs: 2500, BaseConfidence: 0.95, Category: "emotion", Description: "Fingerspelled LOVE"},
			{Word: "HELLO", Gestures: []string{"H", "E", "L", "L", "O"}, DurationMs: 3000, BaseConfidence: 0.95, Category: "greeting", Description: "Fingerspelled HELLO"},
		},
		Complex: []Pattern{
			{
				Word:           "HELLO",
				Gestures:       []string{"OPEN_HAND"},
				DurationMs:     1200,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirRight, Speed: sequence.SpeedMedium}},
				BaseConfidence: 0.9,
				Category:       "greeting",
				Description:    "Open hand waving outward",
			},
			{
				Word:           "GOODBYE",
				Gestures:       []string{"OPEN_HAND", "OPEN_HAND"},
				DurationMs:     2000,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirLeft, Speed: sequence.SpeedMedium}, {Type: sequence.MovementLinear, Direction: sequence.DirRight, Speed: sequence.SpeedMedium}},
				BaseConfidence: 0.8,
				Category:       "greeting",
				Description:    "Repeated open-hand wave",
			},
			{
				Word:           "THANK YOU",
				Gestures:       []string{"FLAT_HAND"},
				DurationMs:     1000,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirForward, Speed: sequence.SpeedMedium}},
				BaseConfidence: 0.85,
				Category:       "courtesy",
				Description:    "Flat hand moving forward from the chin",
			},
			{
				Word:           "PLEASE",
				Gestures:       []string{"OPEN_HAND"},
				DurationMs:     1500,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementCircular, Speed: sequence.SpeedSlow}},
				BaseConfidence: 0.85,
				Category:       "courtesy",
				Description:    "Open hand circling on the chest",
			},
			{
				Word:           "SORRY",
				Gestures:       []string{"FIST"},
				DurationMs:     1500,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementCircular, Speed: sequence.SpeedSlow}},
				BaseConfidence: 0.85,
				Category:       "courtesy",
				Description:    "Fist circling on the chest",
			},
			{
				Word:           "YES",
				Gestures:       []string{"FIST"},
				DurationMs:     800,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirDown, Speed: sequence.SpeedMedium}},
				BaseConfidence: 0.85,
				Category:       "response",
				Description:    "Fist nodding downward",
			},
			{
				Word:           "NO",
				Gestures:       []string{"U"},
				DurationMs:     600,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirDown, Speed: sequence.SpeedFast}},
				BaseConfidence: 0.8,
				Category:       "response",
				Description:    "Paired fingers snapping shut",
			},
			{
				Word:           "STOP",
				Gestures:       []string{"FLAT_HAND"},
				DurationMs:     500,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirForward, Speed: sequence.SpeedFast}},
				BaseConfidence: 0.85,
				Category:       "emergency",
				Description:    "Flat hand thrust forward",
			},
			{
				Word:           "HELP",
				Gestures:       []string{"FIST", "FLAT_HAND"},
				DurationMs:     1500,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementLinear, Direction: sequence.DirUp, Speed: sequence.SpeedSlow}},
				BaseConfidence: 0.8,
				Category:       "emergency",
				Description:    "Fist resting on flat hand, lifted together",
			},
			{
				Word:           "I LOVE YOU",
				Gestures:       []string{"ILY"},
				DurationMs:     1000,
				Movements:      []sequence.MovementPattern{{Type: sequence.MovementStatic, Speed: sequence.SpeedSlow}},
				BaseConfidence: 0.9,
				Category:       "emotion",
				Description:    "Thumb, index and pinky held out",
			},
		},
		Synonyms: map[string][]string{
			"OPEN_HAND": {"FIVE", "FLAT_HAND"},
			"FLAT_HAND": {"B", "OPEN_HAND"},
			"FIST":      {"S", "A"},
			"U":         {"H", "V"},
		},
	}
}
