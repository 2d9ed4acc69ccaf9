package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/session"
)

// frame is one recorded landmark snapshot in a replay log.
type frame struct {
	TimestampMs int64              `json:"timestamp_ms"`
	Points      []landmark.Point3D `json:"points"`
}

func newReplayCommand() *cobra.Command {
	var minConfidence float64
	var verbose bool

	cmd := &cobra.Command{
		Use:   "replay <frames.json>",
		Short: "Replay a recorded landmark stream through the pipeline",
		Long: `replay decodes a JSON array of {timestamp_ms, points[21]} frames,
classifies each frame, buffers confident letters as sequence tokens and
attempts word recognition at the end of the stream.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min-confidence") {
				minConfidence = viper.GetFloat64("classifier.min_confidence")
			}
			return runReplay(args[0], minConfidence, verbose)
		},
	}

	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.7, "Minimum confidence for a letter to enter the sequence")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every frame's classification")
	viper.BindPFlag("classifier.min_confidence", cmd.Flags().Lookup("min-confidence"))

	return cmd
}

func runReplay(path string, minConfidence float64, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read frame log: %w", err)
	}

	var frames []frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return fmt.Errorf("parse frame log: %w", err)
	}

	mgr, err := session.NewManager(session.DefaultConfig())
	if err != nil {
		return err
	}
	sess, err := mgr.Create()
	if err != nil {
		return err
	}
	defer mgr.Remove(sess.ID())

	lastToken := ""
	for i, f := range frames {
		hand := landmark.Hand(f.Points)
		if len(hand) == 0 {
			sess.HandLost()
			lastToken = ""
			continue
		}

		res := sess.ProcessFrame(hand)
		if verbose {
			fmt.Printf("frame %4d: %-2s confidence=%.2f quality=%s\n", i, res.Letter, res.Confidence, res.Quality)
		}

		// Buffer each confident letter once per run of identical frames.
		if res.Letter != "" && res.Letter != "?" && res.Confidence >= minConfidence && res.Letter != lastToken {
			movement := sess.PushToken(res.Letter, hand, f.TimestampMs)
			lastToken = res.Letter
			if verbose {
				fmt.Printf("            buffered %q movement=%s/%s\n", res.Letter, movement.Type, movement.Speed)
			}
		}
	}

	status := sess.Status()
	fmt.Printf("Buffered %d tokens over %dms (last %q)\n", status.Length, status.DurationMs, status.LastToken)

	if result := sess.AttemptWord(); result != nil {
		fmt.Printf("Recognized: %s (confidence=%.2f quality=%s completeness=%.2f)\n",
			result.Word, result.Confidence, result.Quality, result.Completeness)
	} else {
		fmt.Println("No word recognized")
	}

	if suggestions := sess.Suggestions(); len(suggestions) > 0 {
		fmt.Printf("Suggestions: %v\n", suggestions)
	}
	return nil
}
