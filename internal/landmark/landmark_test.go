package landmark

import (
	"math"
	"testing"
)

func TestHand_Valid(t *testing.T) {
	if !OpenPalm().Valid() {
		t.Error("expected preset pose to be valid")
	}

	if (Hand{}).Valid() {
		t.Error("expected empty hand to be invalid")
	}

	short := make(Hand, 19)
	if short.Valid() {
		t.Error("expected 19-point hand to be invalid")
	}

	long := make(Hand, 22)
	if long.Valid() {
		t.Error("expected 22-point hand to be invalid")
	}

	nan := make(Hand, NumLandmarks)
	nan[IndexTip].Y = math.NaN()
	if nan.Valid() {
		t.Error("expected hand with NaN coordinate to be invalid")
	}
}

func TestDistance(t *testing.T) {
	a := Point3D{X: 0, Y: 0, Z: 0}
	b := Point3D{X: 3, Y: 4, Z: 0}
	if d := Distance(a, b); d != 5 {
		t.Errorf("expected distance 5, got %f", d)
	}
	if d := Distance(a, a); d != 0 {
		t.Errorf("expected distance 0 for identical points, got %f", d)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point3D
		want    float64
	}{
		{
			name: "right angle",
			a:    Point3D{X: 1, Y: 0, Z: 0},
			b:    Point3D{X: 0, Y: 0, Z: 0},
			c:    Point3D{X: 0, Y: 1, Z: 0},
			want: 90,
		},
		{
			name: "straight line",
			a:    Point3D{X: -1, Y: 0, Z: 0},
			b:    Point3D{X: 0, Y: 0, Z: 0},
			c:    Point3D{X: 1, Y: 0, Z: 0},
			want: 180,
		},
		{
			name: "degenerate segment",
			a:    Point3D{X: 0, Y: 0, Z: 0},
			b:    Point3D{X: 0, Y: 0, Z: 0},
			c:    Point3D{X: 1, Y: 0, Z: 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Angle(tt.a, tt.b, tt.c)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("expected angle %f, got %f", tt.want, got)
			}
		})
	}
}

func TestHand_Normalize(t *testing.T) {
	normalized := OpenPalm().Normalize()
	if normalized == nil {
		t.Fatal("expected normalized hand for valid pose")
	}

	wrist := normalized[Wrist]
	if wrist.X != 0 || wrist.Y != 0 || wrist.Z != 0 {
		t.Errorf("expected wrist at origin, got %+v", wrist)
	}

	scale := Distance(Point3D{}, normalized[MiddleMCP])
	if math.Abs(scale-1.0) > 1e-9 {
		t.Errorf("expected wrist-to-middle-MCP distance 1.0, got %f", scale)
	}

	if (Hand{}).Normalize() != nil {
		t.Error("expected nil for invalid hand")
	}
}

func TestPresetPoses_AllValid(t *testing.T) {
	poses := map[string]Hand{
		"OpenPalm":       OpenPalm(),
		"Fist":           Fist(),
		"CurledKnuckles": CurledKnuckles(),
		"RoundedO":       RoundedO(),
		"ThumbsUp":       ThumbsUp(),
		"IndexPoint":     IndexPoint(),
		"Victory":        Victory(),
		"TwoTogether":    TwoTogether(),
		"CrossedFingers": CrossedFingers(),
		"PinkyUp":        PinkyUp(),
		"HangLoose":      HangLoose(),
		"LShape":         LShape(),
		"ThreeUp":        ThreeUp(),
		"FlatHand":       FlatHand(),
		"OKSign":         OKSign(),
	}

	for name, pose := range poses {
		if !pose.Valid() {
			t.Errorf("pose %s is not a valid hand", name)
		}
	}
}
