package classifier

import "github.com/ayusman/mudra/internal/landmark"

// Secondary disambiguation thresholds for shapes sharing a finger count.
const (
	// spreadSeparation is the minimum index-middle fingertip distance for
	// a spread "V" shape.
	spreadSeparation = 0.06
	// touchingSeparation is the maximum fingertip distance for fingers
	// held flush together, the "H" shape.
	touchingSeparation = 0.035
	// bentIndexAngleDeg is the maximum index angle for the hooked "X"
	// shape. An index straighter than this is a plain point.
	bentIndexAngleDeg = 160
	// ringDistance is the maximum mean fingertip-to-thumb distance for the
	// rounded "O" shape.
	ringDistance = 0.06
	// knuckleRestDistance is the maximum mean fingertip-to-knuckle
	// distance for the "E" shape.
	knuckleRestDistance = 0.05
)

// rule is one terminal classification outcome. Rules are checked in slice
// order and the first match wins, so the order below is the deterministic
// tie-break between ambiguous hand shapes.
type rule struct {
	letter      string
	confidence  float64
	description string
	match       func(f *features, cfg Config) bool
}

var letterRules = []rule{
	{"A", 0.9, "Closed fist with thumb alongside", func(f *features, cfg Config) bool {
		return f.only(thumbF)
	}},
	{"L", 0.9, "Thumb and index forming an L", func(f *features, cfg Config) bool {
		return f.only(thumbF, indexF)
	}},
	{"Y", 0.9, "Thumb and pinky extended", func(f *features, cfg Config) bool {
		return f.only(thumbF, pinkyF)
	}},
	{"D", 0.9, "Index up, thumb resting on middle fingertip", func(f *features, cfg Config) bool {
		return f.only(indexF) && f.thumbToTip(landmark.MiddleTip) < cfg.ThumbTouchDistance
	}},
	{"X", 0.7, "Hooked index finger", func(f *features, cfg Config) bool {
		return f.only(indexF) && f.indexAngle() < bentIndexAngleDeg
	}},
	{"I", 0.9, "Pinky extended", func(f *features, cfg Config) bool {
		return f.only(pinkyF)
	}},
	{"R", 0.8, "Index crossed over middle", func(f *features, cfg Config) bool {
		return f.only(indexF, middleF) && f.crossed()
	}},
	{"V", 0.9, "Index and middle spread apart", func(f *features, cfg Config) bool {
		return f.only(indexF, middleF) && f.tipSeparation() > spreadSeparation
	}},
	{"H", 0.75, "Index and middle flush together", func(f *features, cfg Config) bool {
		return f.only(indexF, middleF) && f.tipSeparation() < touchingSeparation
	}},
	{"U", 0.85, "Index and middle together", func(f *features, cfg Config) bool {
		return f.only(indexF, middleF)
	}},
	{"F", 0.9, "Thumb-index ring, three fingers up", func(f *features, cfg Config) bool {
		return f.only(middleF, ringF, pinkyF) && f.thumbToTip(landmark.IndexTip) < cfg.ThumbTouchDistance
	}},
	{"W", 0.9, "Index, middle and ring extended", func(f *features, cfg Config) bool {
		return f.only(indexF, middleF, ringF)
	}},
	{"K", 0.75, "Thumb between index and middle", func(f *features, cfg Config) bool {
		return f.only(thumbF, indexF, middleF)
	}},
	{"B", 0.85, "Flat hand, thumb folded across", func(f *features, cfg Config) bool {
		return f.only(indexF, middleF, ringF, pinkyF)
	}},
	{"O", 0.85, "Fingertips rounded to thumb", func(f *features, cfg Config) bool {
		return f.count == 0 && f.avgTipToThumb() < ringDistance
	}},
	{"E", 0.7, "Fingertips curled onto knuckles", func(f *features, cfg Config) bool {
		return f.count == 0 && f.avgTipToMCP() < knuckleRestDistance
	}},
	{"S", 0.75, "Closed fist", func(f *features, cfg Config) bool {
		return f.count == 0
	}},
	{"?", 0.5, "Open hand", func(f *features, cfg Config) bool {
		return f.count == 5
	}},
	{"?", 0.3, "Unrecognized hand shape", func(f *features, cfg Config) bool {
		return true
	}},
}
