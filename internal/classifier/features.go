package classifier

import "github.com/ayusman/mudra/internal/landmark"

// Finger indices into the extended array.
const (
	thumbF = iota
	indexF
	middleF
	ringF
	pinkyF
	numFingers
)

// fingerJoints maps the four non-thumb fingers to their MCP, PIP and TIP
// landmark indices.
var fingerJoints = [4][3]int{
	{landmark.IndexMCP, landmark.IndexPIP, landmark.IndexTip},
	{landmark.MiddleMCP, landmark.MiddlePIP, landmark.MiddleTip},
	{landmark.RingMCP, landmark.RingPIP, landmark.RingTip},
	{landmark.PinkyMCP, landmark.PinkyPIP, landmark.PinkyTip},
}

// features is the geometric summary of a single hand snapshot that the
// letter rules branch on.
type features struct {
	hand     landmark.Hand
	extended [numFingers]bool
	count    int
}

// extractFeatures computes per-finger extension state for a valid hand.
// A finger is extended iff its MCP-PIP-TIP angle exceeds the extension
// threshold and its tip sits above its PIP. The thumb instead uses a
// distance test from the index MCP combined with an MCP-IP-TIP angle test.
func extractFeatures(h landmark.Hand, cfg Config) features {
	f := features{hand: h}

	thumbDist := landmark.Distance(h[landmark.ThumbTip], h[landmark.IndexMCP])
	thumbAngle := landmark.Angle(h[landmark.ThumbMCP], h[landmark.ThumbIP], h[landmark.ThumbTip])
	f.extended[thumbF] = thumbDist > cfg.ThumbDistance && thumbAngle > cfg.ThumbAngleDeg

	for i, joints := range fingerJoints {
		mcp, pip, tip := h[joints[0]], h[joints[1]], h[joints[2]]
		angle := landmark.Angle(mcp, pip, tip)
		f.extended[indexF+i] = angle > cfg.ExtensionAngleDeg && tip.Y < pip.Y
	}

	for _, ext := range f.extended {
		if ext {
			f.count++
		}
	}

	return f
}

// only reports whether exactly the given fingers are extended.
func (f *features) only(fingers ...int) bool {
	var want [numFingers]bool
	for _, i := range fingers {
		want[i] = true
	}
	return want == f.extended
}

// thumbToTip returns the distance from the thumb tip to the given landmark.
func (f *features) thumbToTip(tipIdx int) float64 {
	return landmark.Distance(f.hand[landmark.ThumbTip], f.hand[tipIdx])
}

// tipSeparation returns the distance between the index and middle fingertips.
func (f *features) tipSeparation() float64 {
	return landmark.Distance(f.hand[landmark.IndexTip], f.hand[landmark.MiddleTip])
}

// crossed reports whether the index and middle fingertips sit on the
// opposite side of each other compared to their knuckles.
func (f *features) crossed() bool {
	tipDX := f.hand[landmark.IndexTip].X - f.hand[landmark.MiddleTip].X
	mcpDX := f.hand[landmark.IndexMCP].X - f.hand[landmark.MiddleMCP].X
	return tipDX*mcpDX < 0
}

// indexAngle returns the index finger's MCP-PIP-TIP angle in degrees.
func (f *features) indexAngle() float64 {
	return landmark.Angle(f.hand[landmark.IndexMCP], f.hand[landmark.IndexPIP], f.hand[landmark.IndexTip])
}

// avgTipToThumb returns the mean distance from the four fingertips to the
// thumb tip.
func (f *features) avgTipToThumb() float64 {
	var sum float64
	for _, joints := range fingerJoints {
		sum += landmark.Distance(f.hand[joints[2]], f.hand[landmark.ThumbTip])
	}
	return sum / 4
}

// avgTipToMCP returns the mean distance from the four fingertips to their
// own knuckles.
func (f *features) avgTipToMCP() float64 {
	var sum float64
	for _, joints := range fingerJoints {
		sum += landmark.Distance(f.hand[joints[2]], f.hand[joints[0]])
	}
	return sum / 4
}
