package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/landmark"
)

// writeFrameLog serializes poses into a replay log, one frame per pose,
// spaced 100ms apart. A nil pose becomes an empty (hand lost) frame.
func writeFrameLog(t *testing.T, poses []landmark.Hand) string {
	t.Helper()

	frames := make([]frame, len(poses))
	for i, p := range poses {
		frames[i] = frame{TimestampMs: int64(i * 100), Points: p}
	}
	data, err := json.Marshal(frames)
	if err != nil {
		t.Fatalf("marshal frames: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frames.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write frame log: %v", err)
	}
	return path
}

func TestRunReplay_Fingerspelling(t *testing.T) {
	// Three fists then three rounded Os spell S, O; the stabilization
	// window needs the repeats before it lets the second letter through.
	path := writeFrameLog(t, []landmark.Hand{
		landmark.Fist(), landmark.Fist(), landmark.Fist(),
		landmark.RoundedO(), landmark.RoundedO(), landmark.RoundedO(),
	})

	if err := runReplay(path, 0.7, false); err != nil {
		t.Fatalf("runReplay() error = %v", err)
	}
}

func TestRunReplay_HandLostFrames(t *testing.T) {
	path := writeFrameLog(t, []landmark.Hand{
		landmark.Victory(), nil, landmark.Victory(),
	})

	if err := runReplay(path, 0.7, true); err != nil {
		t.Fatalf("runReplay() error = %v", err)
	}
}

func TestRunReplay_MissingFile(t *testing.T) {
	if err := runReplay(filepath.Join(t.TempDir(), "absent.json"), 0.7, false); err == nil {
		t.Error("expected an error for a missing frame log")
	}
}

func TestRunReplay_MalformedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write frame log: %v", err)
	}

	if err := runReplay(path, 0.7, false); err == nil {
		t.Error("expected an error for a malformed frame log")
	}
}
