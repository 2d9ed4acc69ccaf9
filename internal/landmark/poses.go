package landmark

// Preset hand poses for tests and demos. Coordinates follow the camera
// convention used by MediaPipe: x grows rightward, y grows downward, so a
// raised fingertip has a smaller y than its knuckle. Each pose is a
// deterministic synthetic hand with the wrist near (0.5, 0.8).

// straightFinger fills the four joints from mcpIdx with a straight segment
// from mcp to tip. Joints are evenly spaced, so the PIP angle is 180 degrees.
func straightFinger(h Hand, mcpIdx int, mcp, tip Point3D) {
	for j := 0; j < 4; j++ {
		t := float64(j) / 3
		h[mcpIdx+j] = Point3D{
			X: mcp.X + (tip.X-mcp.X)*t,
			Y: mcp.Y + (tip.Y-mcp.Y)*t,
			Z: mcp.Z + (tip.Z-mcp.Z)*t,
		}
	}
}

// curledFinger fills the four joints from mcpIdx with a finger folded toward
// the palm. tipDrop controls how far below the knuckle the fingertip rests:
// a larger drop puts the tip farther from its MCP (a closed fist), a zero
// drop leaves the tip resting on the knuckle.
func curledFinger(h Hand, mcpIdx int, x, mcpY, tipDrop float64) {
	h[mcpIdx] = Point3D{X: x, Y: mcpY, Z: 0}
	h[mcpIdx+1] = Point3D{X: x, Y: mcpY - 0.06, Z: -0.05}
	h[mcpIdx+2] = Point3D{X: x - 0.01, Y: mcpY - 0.02, Z: -0.06}
	h[mcpIdx+3] = Point3D{X: x - 0.01, Y: mcpY + tipDrop, Z: -0.04}
}

// tuckedThumb places the thumb bent across the palm, close enough to the
// index MCP that it does not count as extended.
func tuckedThumb(h Hand) {
	h[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0}
	h[ThumbMCP] = Point3D{X: 0.58, Y: 0.74, Z: 0}
	h[ThumbIP] = Point3D{X: 0.54, Y: 0.78, Z: 0.01}
	h[ThumbTip] = Point3D{X: 0.50, Y: 0.74, Z: 0.02}
}

func basePose() Hand {
	h := make(Hand, NumLandmarks)
	h[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0}
	return h
}

// OpenPalm returns a hand with all five fingers extended.
func OpenPalm() Hand {
	h := basePose()
	straightFinger(h, ThumbCMC, Point3D{X: 0.56, Y: 0.76}, Point3D{X: 0.72, Y: 0.60, Z: 0.02})
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.57, Y: 0.35})
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.50, Y: 0.28})
	straightFinger(h, RingMCP, Point3D{X: 0.45, Y: 0.68}, Point3D{X: 0.43, Y: 0.35})
	straightFinger(h, PinkyMCP, Point3D{X: 0.40, Y: 0.70}, Point3D{X: 0.37, Y: 0.42})
	return h
}

// Fist returns a closed fist: all fingers curled, thumb folded across.
func Fist() Hand {
	h := basePose()
	tuckedThumb(h)
	curledFinger(h, IndexMCP, 0.55, 0.68, 0.04)
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0.04)
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// CurledKnuckles returns a hand with every fingertip resting on its own
// knuckle, the "E" hand shape.
func CurledKnuckles() Hand {
	h := basePose()
	tuckedThumb(h)
	curledFinger(h, IndexMCP, 0.55, 0.68, 0)
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0)
	curledFinger(h, RingMCP, 0.45, 0.68, 0)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0)
	return h
}

// RoundedO returns a hand with all fingertips arched forward to meet the
// thumb tip in a ring.
func RoundedO() Hand {
	h := basePose()
	cluster := Point3D{X: 0.53, Y: 0.645, Z: -0.06}
	straightFinger(h, ThumbCMC, Point3D{X: 0.56, Y: 0.76}, Point3D{X: 0.535, Y: 0.64, Z: -0.05})
	for _, mcp := range []struct {
		idx  int
		x, y float64
	}{
		{IndexMCP, 0.55, 0.68},
		{MiddleMCP, 0.50, 0.66},
		{RingMCP, 0.45, 0.68},
		{PinkyMCP, 0.40, 0.70},
	} {
		h[mcp.idx] = Point3D{X: mcp.x, Y: mcp.y, Z: 0}
		h[mcp.idx+1] = Point3D{X: mcp.x, Y: mcp.y - 0.05, Z: -0.03}
		h[mcp.idx+2] = Point3D{X: mcp.x + (cluster.X-mcp.x)*0.6, Y: mcp.y - 0.055, Z: -0.05}
		h[mcp.idx+3] = cluster
	}
	return h
}

// ThumbsUp returns a fist with the thumb extended straight up.
func ThumbsUp() Hand {
	h := basePose()
	straightFinger(h, ThumbCMC, Point3D{X: 0.57, Y: 0.75}, Point3D{X: 0.58, Y: 0.35})
	curledFinger(h, IndexMCP, 0.55, 0.68, 0.04)
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0.04)
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// IndexPoint returns a hand with only the index extended and the thumb
// resting on the curled middle fingertip, the "D" hand shape.
func IndexPoint() Hand {
	h := basePose()
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.56, Y: 0.35})
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0.04)
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	h[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0}
	h[ThumbMCP] = Point3D{X: 0.56, Y: 0.74, Z: 0}
	h[ThumbIP] = Point3D{X: 0.53, Y: 0.73, Z: -0.02}
	h[ThumbTip] = Point3D{X: 0.50, Y: 0.71, Z: -0.04}
	return h
}

// Victory returns a hand with the index and middle fingers extended and
// spread apart.
func Victory() Hand {
	h := basePose()
	tuckedThumb(h)
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.62, Y: 0.36})
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.44, Y: 0.34})
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// TwoTogether returns a hand with the index and middle fingers extended and
// held together, the "U" hand shape.
func TwoTogether() Hand {
	h := basePose()
	tuckedThumb(h)
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.55, Y: 0.35})
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.51, Y: 0.34})
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// CrossedFingers returns a hand with the extended index crossed over the
// middle finger, the "R" hand shape.
func CrossedFingers() Hand {
	h := basePose()
	tuckedThumb(h)
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.48, Y: 0.35})
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.53, Y: 0.34})
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// PinkyUp returns a fist with only the pinky extended.
func PinkyUp() Hand {
	h := basePose()
	tuckedThumb(h)
	curledFinger(h, IndexMCP, 0.55, 0.68, 0.04)
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0.04)
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	straightFinger(h, PinkyMCP, Point3D{X: 0.40, Y: 0.70}, Point3D{X: 0.42, Y: 0.40})
	return h
}

// HangLoose returns a hand with the thumb and pinky extended.
func HangLoose() Hand {
	h := basePose()
	straightFinger(h, ThumbCMC, Point3D{X: 0.56, Y: 0.76}, Point3D{X: 0.74, Y: 0.66, Z: 0.02})
	curledFinger(h, IndexMCP, 0.55, 0.68, 0.04)
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0.04)
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	straightFinger(h, PinkyMCP, Point3D{X: 0.40, Y: 0.70}, Point3D{X: 0.38, Y: 0.40})
	return h
}

// LShape returns a hand with the thumb out sideways and the index up.
func LShape() Hand {
	h := basePose()
	straightFinger(h, ThumbCMC, Point3D{X: 0.56, Y: 0.76}, Point3D{X: 0.74, Y: 0.68, Z: 0.02})
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.56, Y: 0.35})
	curledFinger(h, MiddleMCP, 0.50, 0.66, 0.04)
	curledFinger(h, RingMCP, 0.45, 0.68, 0.04)
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// ThreeUp returns a hand with index, middle and ring extended, the "W"
// hand shape.
func ThreeUp() Hand {
	h := basePose()
	tuckedThumb(h)
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.58, Y: 0.36})
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.50, Y: 0.32})
	straightFinger(h, RingMCP, Point3D{X: 0.45, Y: 0.68}, Point3D{X: 0.42, Y: 0.36})
	curledFinger(h, PinkyMCP, 0.40, 0.70, 0.04)
	return h
}

// FlatHand returns a hand with the four fingers extended upward and the
// thumb folded across the palm, the "B" hand shape.
func FlatHand() Hand {
	h := basePose()
	h[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0}
	h[ThumbMCP] = Point3D{X: 0.57, Y: 0.73, Z: 0.01}
	h[ThumbIP] = Point3D{X: 0.53, Y: 0.74, Z: 0.02}
	h[ThumbTip] = Point3D{X: 0.49, Y: 0.71, Z: 0.02}
	straightFinger(h, IndexMCP, Point3D{X: 0.55, Y: 0.68}, Point3D{X: 0.56, Y: 0.35})
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.50, Y: 0.30})
	straightFinger(h, RingMCP, Point3D{X: 0.45, Y: 0.68}, Point3D{X: 0.43, Y: 0.35})
	straightFinger(h, PinkyMCP, Point3D{X: 0.40, Y: 0.70}, Point3D{X: 0.38, Y: 0.42})
	return h
}

// OKSign returns a hand with the thumb and index forming a ring and the
// remaining three fingers extended, the "F" hand shape.
func OKSign() Hand {
	h := basePose()
	h[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0}
	h[IndexPIP] = Point3D{X: 0.56, Y: 0.62, Z: -0.02}
	h[IndexDIP] = Point3D{X: 0.57, Y: 0.58, Z: -0.04}
	h[IndexTip] = Point3D{X: 0.57, Y: 0.63, Z: -0.05}
	h[ThumbCMC] = Point3D{X: 0.56, Y: 0.76, Z: 0}
	h[ThumbMCP] = Point3D{X: 0.58, Y: 0.72, Z: -0.01}
	h[ThumbIP] = Point3D{X: 0.58, Y: 0.67, Z: -0.03}
	h[ThumbTip] = Point3D{X: 0.575, Y: 0.625, Z: -0.04}
	straightFinger(h, MiddleMCP, Point3D{X: 0.50, Y: 0.66}, Point3D{X: 0.50, Y: 0.30})
	straightFinger(h, RingMCP, Point3D{X: 0.45, Y: 0.68}, Point3D{X: 0.43, Y: 0.35})
	straightFinger(h, PinkyMCP, Point3D{X: 0.40, Y: 0.70}, Point3D{X: 0.38, Y: 0.42})
	return h
}
