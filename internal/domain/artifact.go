package domain

import "time"

// Artifact is a synthesized audio clip ready for playback.
//
// Cache-backed and asset-backed artifacts (Transient == false) live at a
// deterministic path and survive playback, so repeated drills of the same
// sentence never resynthesize. Transient artifacts are in-memory one-shots,
// produced when the disk copy could not be written; the player removes any
// leftover file after their single playback, success or not.
type Artifact struct {
	Path      string
	Data      []byte
	Duration  time.Duration
	VoiceID   string
	Transient bool
}
