package domain

import (
	"context"
	"time"
)

// SentenceSource provides rows of parallel-language sentences.
// Implementations can be spreadsheet-backed or in-memory (tests).
type SentenceSource interface {
	// Rows returns the inclusive 1-based [start, end] range in ascending order.
	Rows(ctx context.Context, start, end int) ([]SentenceRow, error)
	// LastRow returns the index of the last populated row.
	LastRow(ctx context.Context) (int, error)
}

// VoiceResolver maps (language, requested voice name) to a synthesizer voice
// identifier. ok == false means the language has no voice at all, a valid
// steady state (subtitle-only language) rather than an error.
type VoiceResolver interface {
	Resolve(lang Language, voiceName string) (voiceID string, ok bool)
}

// Synthesizer produces playable audio for text. Empty or all-whitespace text
// and an empty voice ID short-circuit to (nil, nil) without reaching the
// backend; a nil artifact with a nil error means "nothing to play".
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string, speed float64) (*Artifact, error)
}

// Player plays one artifact at a time, blocking for at least the artifact's
// duration. Play(nil) is a no-op returning zero elapsed time.
type Player interface {
	Play(ctx context.Context, a *Artifact) (time.Duration, error)
	Stop()
}

// SubtitleRenderer receives the per-rank subtitle reveals and session
// progress updates. Implementations must be safe to call from the sequencer
// goroutine.
type SubtitleRenderer interface {
	ShowSubtitle(rank Rank, text string, slot Slot)
	ClearSubtitles()
	ShowProgress(p Progress)
}

// StudyClock accumulates study time across sentence iterations and persists
// it, rate-limited, to durable storage.
type StudyClock interface {
	// Tick is called once per sentence; it flushes whole elapsed minutes
	// when 60 or more seconds have passed since the last flush.
	Tick(ctx context.Context) error
	// Minutes returns today's accumulated study minutes.
	Minutes() int
}
