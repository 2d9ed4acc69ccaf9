package main

import "github.com/ayusman/mudra/internal/landmark"

// namedPose pairs a preset pose with a display name for the demo command.
type namedPose struct {
	name string
	hand landmark.Hand
}

func presetPoses() []namedPose {
	return []namedPose{
		{"thumbs up", landmark.ThumbsUp()},
		{"flat hand", landmark.FlatHand()},
		{"index point", landmark.IndexPoint()},
		{"curled knuckles", landmark.CurledKnuckles()},
		{"ok sign", landmark.OKSign()},
		{"two together", landmark.TwoTogether()},
		{"pinky up", landmark.PinkyUp()},
		{"L shape", landmark.LShape()},
		{"rounded O", landmark.RoundedO()},
		{"crossed fingers", landmark.CrossedFingers()},
		{"closed fist", landmark.Fist()},
		{"victory", landmark.Victory()},
		{"three up", landmark.ThreeUp()},
		{"hang loose", landmark.HangLoose()},
		{"open palm", landmark.OpenPalm()},
	}
}
