package domain

import "time"

// Session represents one learner session working through a sentence range.
// It is mutated only by the sequencer, inside its documented tick
// boundaries; the UI reads it through snapshots.
type Session struct {
	ID     string
	Config SessionConfig
	Status SessionStatus

	// Pass is the 1-based current traversal of the range. SentenceCount
	// counts sentences played in the current pass and resets when a repeat
	// pass starts.
	Pass          int
	SentenceCount int

	StartedAt time.Time
	UpdatedAt time.Time
}

// SessionStatus tracks the lifecycle of a drill session.
type SessionStatus int

const (
	SessionIdle SessionStatus = iota
	SessionPlaying
	SessionStopped
	SessionCompleted
)

// String returns a human-readable session status.
func (s SessionStatus) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionPlaying:
		return "playing"
	case SessionStopped:
		return "stopped"
	case SessionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Progress is the read-only snapshot the UI renders each sentence: where the
// session is within the pass and the accumulated study time.
type Progress struct {
	RowIndex     int // 1-based sheet row currently playing
	Position     int // 1-based position within the range
	Total        int // sentences in the range
	Pass         int // 1-based current pass
	TotalPasses  int
	StudyMinutes int
	Note         string // transient status line (break countdown etc.)
}
