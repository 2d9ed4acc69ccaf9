// Package landmark provides hand landmark types and geometry helpers for
// sign-language recognition.
package landmark

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in normalized device coordinates.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand is one frame's worth of landmarks for a single detected hand.
// A valid hand has exactly NumLandmarks points.
type Hand []Point3D

// Valid reports whether h is a well-formed 21-point landmark set with
// finite coordinates.
func (h Hand) Valid() bool {
	if len(h) != NumLandmarks {
		return false
	}
	for i := range h {
		if !finite(h[i].X) || !finite(h[i].Y) || !finite(h[i].Z) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Distance calculates the Euclidean distance between two 3D points.
func Distance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Angle returns the angle at vertex b formed by the segments b->a and b->c,
// in degrees. Degenerate (zero-length) segments yield 0.
func Angle(a, b, c Point3D) float64 {
	v1 := Point3D{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
	v2 := Point3D{X: c.X - b.X, Y: c.Y - b.Y, Z: c.Z - b.Z}

	dot := v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
	m1 := math.Sqrt(v1.X*v1.X + v1.Y*v1.Y + v1.Z*v1.Z)
	m2 := math.Sqrt(v2.X*v2.X + v2.Y*v2.Y + v2.Z*v2.Z)

	if m1 < 1e-10 || m2 < 1e-10 {
		return 0
	}

	cos := dot / (m1 * m2)
	// Clamp for numeric safety before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}

// Normalize returns a copy of the hand translated so the wrist sits at the
// origin and scaled so that the wrist to middle-finger-MCP distance is 1.0.
// Returns nil for an invalid hand.
func (h Hand) Normalize() Hand {
	if !h.Valid() {
		return nil
	}

	normalized := make(Hand, NumLandmarks)
	wrist := h[Wrist]
	for i := range h {
		normalized[i] = Point3D{
			X: h[i].X - wrist.X,
			Y: h[i].Y - wrist.Y,
			Z: h[i].Z - wrist.Z,
		}
	}

	scale := Distance(Point3D{}, normalized[MiddleMCP])
	if scale < 1e-10 {
		return normalized
	}

	for i := range normalized {
		normalized[i].X /= scale
		normalized[i].Y /= scale
		normalized[i].Z /= scale
	}

	return normalized
}
