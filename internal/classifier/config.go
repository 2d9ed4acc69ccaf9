package classifier

// Config holds the geometric thresholds used by letter classification.
// The values are empirical; they were tuned against live landmark streams
// and should be adjusted together, not individually re-derived.
type Config struct {
	// ExtensionAngleDeg is the minimum MCP-PIP-TIP angle for a finger to
	// count as extended.
	ExtensionAngleDeg float64

	// ThumbDistance is the minimum thumb-tip to index-MCP distance for the
	// thumb to count as extended.
	ThumbDistance float64

	// ThumbAngleDeg is the minimum MCP-IP-TIP angle for the thumb to count
	// as extended.
	ThumbAngleDeg float64

	// ThumbTouchDistance is the maximum thumb-tip to fingertip distance
	// treated as the thumb touching that finger.
	ThumbTouchDistance float64

	// HistorySize is the length of the rolling letter history used for
	// temporal stabilization.
	HistorySize int

	// StabilizeMinConfidence is the minimum confidence for a frame's letter
	// to enter the history.
	StabilizeMinConfidence float64

	// StabilizeBonus is added to the confidence when the history agrees on
	// a letter.
	StabilizeBonus float64
}

// DefaultConfig returns a Config with the standard thresholds.
func DefaultConfig() Config {
	return Config{
		ExtensionAngleDeg:      140,
		ThumbDistance:          0.08,
		ThumbAngleDeg:          120,
		ThumbTouchDistance:     0.05,
		HistorySize:            5,
		StabilizeMinConfidence: 0.5,
		StabilizeBonus:         0.1,
	}
}
