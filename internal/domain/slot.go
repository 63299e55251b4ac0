package domain

import "time"

// Slot is the configuration of one ranked language position.
//
// Language == LangNone means the slot is inactive: no subtitle, no audio,
// zero time cost. A real language with Repeat == 0 is an active-but-silent
// slot: its subtitle is still shown (unless hidden) but no audio is ever
// synthesized. The two cases are deliberately distinct.
type Slot struct {
	Language     Language
	Repeat       int
	Speed        float64
	VoiceName    string
	HideSubtitle bool
	FontSize     int
	Color        string
}

// Inactive reports whether the slot contributes nothing to a sentence.
func (s Slot) Inactive() bool {
	return !s.Language.Active()
}

// SessionConfig is the full per-session playback configuration, assembled
// from persisted settings at session start. The sequencer treats it as
// read-only for the lifetime of a pass.
type SessionConfig struct {
	Slots [3]Slot

	// Pacing.
	InterRepeatGap   time.Duration // between repetitions of one slot
	InterSentenceGap time.Duration // after the last rank of a sentence
	SubtitleStagger  time.Duration // per-rank subtitle reveal offset

	// Rest breaks.
	BreakEnabled  bool
	BreakInterval int // sentences between breaks
	BreakDuration time.Duration

	// Whole-set repetition.
	AutoRepeat  bool
	TotalPasses int

	// Inclusive 1-based row range.
	StartRow int
	EndRow   int
}

// Slot returns the slot configured for a rank.
func (c SessionConfig) Slot(r Rank) Slot {
	return c.Slots[int(r)]
}

// Validate checks the invariants that must hold before a sequencing loop may
// start. lastRow is the number of populated rows in the source.
func (c SessionConfig) Validate(lastRow int) error {
	if c.StartRow < 1 || c.EndRow < c.StartRow || c.EndRow > lastRow {
		return ErrInvalidRange
	}
	if c.AutoRepeat && c.TotalPasses < 1 {
		return ErrInvalidConfig
	}
	if c.BreakEnabled && c.BreakInterval < 1 {
		return ErrInvalidConfig
	}
	return nil
}
