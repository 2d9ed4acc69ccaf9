// Package sequence buffers classified gesture tokens over time and derives
// coarse wrist-movement descriptors from the buffered landmark snapshots.
package sequence

import (
	"math"

	"github.com/ayusman/mudra/internal/landmark"
)

// MovementType classifies the coarse shape of a wrist trajectory.
type MovementType string

const (
	MovementStatic   MovementType = "static"
	MovementLinear   MovementType = "linear"
	MovementCircular MovementType = "circular"
)

// Direction labels the dominant axis of a linear movement. The contact
// directions (toward, inward, outward) never come out of the detector; they
// appear only in vocabulary patterns describing signs relative to the body.
type Direction string

const (
	DirUp       Direction = "up"
	DirDown     Direction = "down"
	DirLeft     Direction = "left"
	DirRight    Direction = "right"
	DirForward  Direction = "forward"
	DirBackward Direction = "backward"
	DirToward   Direction = "toward"
	DirInward   Direction = "inward"
	DirOutward  Direction = "outward"
)

// Speed buckets the displacement magnitude of a movement.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedMedium Speed = "medium"
	SpeedFast   Speed = "fast"
)

// MovementPattern is a coarse motion descriptor derived from recent wrist
// positions, or an expected motion attached to a vocabulary pattern.
type MovementPattern struct {
	Type        MovementType `json:"type"`
	Direction   Direction    `json:"direction,omitempty"`
	Speed       Speed        `json:"speed"`
	Repetitions int          `json:"repetitions,omitempty"`
}

// Config holds the movement and buffering thresholds. The numeric values
// are empirical; keep them as a set.
type Config struct {
	// StaticThreshold is the displacement magnitude below which the wrist
	// counts as stationary.
	StaticThreshold float64
	// MediumThreshold and FastThreshold bucket the displacement magnitude
	// into speeds.
	MediumThreshold float64
	FastThreshold   float64
	// CircularAreaThreshold is the minimum triangle area spanned by the
	// trajectory samples for the movement to count as circular.
	CircularAreaThreshold float64
	// TrajectorySamples is how many recent valid snapshots movement
	// detection looks at.
	TrajectorySamples int
	// GapMs is the inter-token gap that resets the buffer.
	GapMs int64
	// Capacity is the maximum number of buffered tokens.
	Capacity int
}

// DefaultConfig returns the standard sequence thresholds.
func DefaultConfig() Config {
	return Config{
		StaticThreshold:       0.02,
		MediumThreshold:       0.05,
		FastThreshold:         0.1,
		CircularAreaThreshold: 0.01,
		TrajectorySamples:     3,
		GapMs:                 3000,
		Capacity:              10,
	}
}

// Detector derives movement patterns from wrist trajectories.
type Detector struct {
	cfg Config
}

// NewDetector creates a Detector with the given thresholds.
func NewDetector(cfg Config) *Detector {
	if cfg.TrajectorySamples <= 0 {
		cfg.TrajectorySamples = DefaultConfig().TrajectorySamples
	}
	return &Detector{cfg: cfg}
}

// Detect classifies the movement described by the given wrist samples,
// ordered oldest first. Fewer samples than the trajectory window yields a
// static/slow pattern rather than an error; movement detection is total.
func (d *Detector) Detect(wrists []landmark.Point3D) MovementPattern {
	if len(wrists) < d.cfg.TrajectorySamples {
		return MovementPattern{Type: MovementStatic, Speed: SpeedSlow}
	}

	first := wrists[0]
	last := wrists[len(wrists)-1]
	dx := last.X - first.X
	dy := last.Y - first.Y
	dz := last.Z - first.Z
	magnitude := math.Sqrt(dx*dx + dy*dy + dz*dz)

	if magnitude < d.cfg.StaticThreshold {
		return MovementPattern{Type: MovementStatic, Speed: SpeedSlow}
	}

	speed := SpeedSlow
	switch {
	case magnitude > d.cfg.FastThreshold:
		speed = SpeedFast
	case magnitude > d.cfg.MediumThreshold:
		speed = SpeedMedium
	}

	// A trajectory that sweeps out area rather than following a line is
	// circular; direction is meaningless for it.
	if triangleArea(wrists[0], wrists[len(wrists)/2], wrists[len(wrists)-1]) > d.cfg.CircularAreaThreshold {
		return MovementPattern{Type: MovementCircular, Speed: speed}
	}

	return MovementPattern{
		Type:      MovementLinear,
		Direction: dominantDirection(dx, dy, dz),
		Speed:     speed,
	}
}

// dominantDirection picks the direction label for the axis with the largest
// absolute displacement. Screen coordinates: y grows downward, z grows away
// from the camera.
func dominantDirection(dx, dy, dz float64) Direction {
	ax, ay, az := math.Abs(dx), math.Abs(dy), math.Abs(dz)
	switch {
	case ax >= ay && ax >= az:
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	case ay >= az:
		if dy > 0 {
			return DirDown
		}
		return DirUp
	default:
		if dz < 0 {
			return DirForward
		}
		return DirBackward
	}
}

// triangleArea returns the area of the triangle spanned by three trajectory
// samples projected onto the image plane.
func triangleArea(a, b, c landmark.Point3D) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}
