// Package sequencer drives the per-sentence playback loop: subtitle
// staggering, ranked audio repetitions, pacing gaps, rest breaks and
// whole-set repetition.
package sequencer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
	"github.com/hammamikhairi/lingodrill/internal/speech"
)

// SynthFallbackDelay is the fixed wait substituted for a repetition whose
// synthesis failed, so pacing stays roughly even in degraded runs.
const SynthFallbackDelay = time.Second

// Sounds supplies the notification audio played around breaks and at the
// end of a pass. All of it is optional: errors degrade, never abort.
type Sounds interface {
	BreakSound(ctx context.Context) (*domain.Artifact, error)
	BreakAnnouncement(ctx context.Context) (*domain.Artifact, error)
	FinalSound(ctx context.Context) (*domain.Artifact, error)
}

// Deps are the collaborators the sequencer orchestrates.
type Deps struct {
	Source  domain.SentenceSource
	Voices  domain.VoiceResolver
	Synth   domain.Synthesizer
	Player  domain.Player
	Display domain.SubtitleRenderer
	Clock   domain.StudyClock
	Sounds  Sounds
	Log     *logger.Logger
}

// Sequencer runs one learning session at a time on a single goroutine.
// Sentences, slots and repetitions are strictly sequential; every blocking
// step is a suspension point and cancellation is checked between sentences
// and between repetitions.
type Sequencer struct {
	deps Deps

	// Injected for tests; real runs use context-aware sleeps and the wall
	// clock.
	sleep func(ctx context.Context, d time.Duration)
	now   func() time.Time
}

// New creates a sequencer over the given collaborators.
func New(deps Deps) *Sequencer {
	return &Sequencer{
		deps:  deps,
		sleep: ctxSleep,
		now:   time.Now,
	}
}

// Run plays the session's configured sentence range to completion. The only
// fatal conditions are an unreadable source and an invalid row range; every
// per-sentence audio failure degrades to subtitle-only pacing. A cancelled
// context stops the session cleanly and returns nil.
func (s *Sequencer) Run(ctx context.Context, session *domain.Session) error {
	cfg := session.Config

	lastRow, err := s.deps.Source.LastRow(ctx)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	if err := cfg.Validate(lastRow); err != nil {
		return err
	}
	rows, err := s.deps.Source.Rows(ctx, cfg.StartRow, cfg.EndRow)
	if err != nil {
		return fmt.Errorf("reading rows [%d,%d]: %w", cfg.StartRow, cfg.EndRow, err)
	}

	session.Status = domain.SessionPlaying
	session.Pass = 1
	session.SentenceCount = 0
	session.StartedAt = s.now()
	s.deps.Log.Info("session %s: %d sentences, %d pass(es)", session.ID, len(rows), cfg.TotalPasses)

	for {
		for i, row := range rows {
			if ctx.Err() != nil {
				return s.stop(session)
			}

			s.deps.Display.ClearSubtitles()
			s.playSentence(ctx, cfg, row)

			s.sleep(ctx, cfg.InterSentenceGap)
			session.SentenceCount++
			session.UpdatedAt = s.now()

			note := ""
			if cfg.BreakEnabled && cfg.BreakInterval > 0 && session.SentenceCount%cfg.BreakInterval == 0 && ctx.Err() == nil {
				note = speech.LineBreakStatus(cfg.BreakInterval, int(cfg.BreakDuration.Seconds()))
				s.showProgress(session, row, i+1, len(rows), note)
				s.takeBreak(ctx, cfg.BreakDuration)
			}

			if err := s.deps.Clock.Tick(ctx); err != nil {
				s.deps.Log.Warn("study time flush failed: %v", err)
			}
			s.showProgress(session, row, i+1, len(rows), note)
		}

		if ctx.Err() != nil {
			return s.stop(session)
		}
		s.playSound(ctx, s.deps.Sounds.FinalSound)

		if cfg.AutoRepeat && session.Pass < cfg.TotalPasses {
			session.Pass++
			session.SentenceCount = 0
			s.deps.Log.Info("session %s: starting pass %d/%d", session.ID, session.Pass, cfg.TotalPasses)
			s.showNote(session, rows, speech.LinePassStatus(session.Pass, cfg.TotalPasses))
			continue
		}
		break
	}

	session.Status = domain.SessionCompleted
	session.UpdatedAt = s.now()
	s.showNote(session, rows, speech.LineDoneStatus(session.Pass))
	s.deps.Log.Info("session %s: completed after %d pass(es)", session.ID, session.Pass)
	return nil
}

// playSentence runs the three ranked slots for one row. Nothing in here is
// fatal.
func (s *Sequencer) playSentence(ctx context.Context, cfg domain.SessionConfig, row domain.SentenceRow) {
	for rankIndex, rank := range domain.AllRanks {
		slot := cfg.Slot(rank)
		if slot.Inactive() {
			continue
		}
		text := row.Get(slot.Language)
		if text == "" {
			continue
		}

		if !slot.HideSubtitle {
			s.sleep(ctx, time.Duration(rankIndex)*cfg.SubtitleStagger)
			s.deps.Display.ShowSubtitle(rank, text, slot)
		}

		if slot.Repeat < 1 {
			// Active but silent: the subtitle above is all this slot does.
			continue
		}

		voiceID, ok := s.deps.Voices.Resolve(slot.Language, slot.VoiceName)
		if !ok {
			s.deps.Log.Debug("no voice for %s, subtitle only", slot.Language)
			continue
		}

		for r := 0; r < slot.Repeat; r++ {
			if ctx.Err() != nil {
				return
			}
			if r > 0 {
				s.sleep(ctx, cfg.InterRepeatGap)
			}
			s.playRepetition(ctx, text, voiceID, slot)
		}
	}
}

// playRepetition synthesizes and plays one repetition, substituting the
// fixed fallback wait when no audio could be produced.
func (s *Sequencer) playRepetition(ctx context.Context, text, voiceID string, slot domain.Slot) {
	artifact, err := s.deps.Synth.Synthesize(ctx, text, voiceID, slot.Speed)
	if err != nil {
		s.deps.Log.Warn("synthesis failed for %s: %v", slot.Language, err)
	}
	if artifact == nil {
		s.sleep(ctx, SynthFallbackDelay)
		return
	}

	if _, err := s.deps.Player.Play(ctx, artifact); err != nil && !errors.Is(err, context.Canceled) {
		s.deps.Log.Warn("playback failed for %s: %v", slot.Language, err)
		s.sleep(ctx, SynthFallbackDelay)
	}
}

// takeBreak plays the notification chime and the break announcement, then
// sleeps whatever remains of the configured break duration. Any failure
// abandons the break early; the session always continues.
func (s *Sequencer) takeBreak(ctx context.Context, duration time.Duration) {
	start := s.now()

	if !s.playSound(ctx, s.deps.Sounds.BreakSound) {
		return
	}
	if !s.playSound(ctx, s.deps.Sounds.BreakAnnouncement) {
		return
	}

	if remaining := duration - s.now().Sub(start); remaining > 0 {
		s.sleep(ctx, remaining)
	}
}

// playSound fetches and plays one notification artifact. Returns false when
// the caller should abandon the rest of its notification sequence.
func (s *Sequencer) playSound(ctx context.Context, fetch func(context.Context) (*domain.Artifact, error)) bool {
	artifact, err := fetch(ctx)
	if err != nil {
		s.deps.Log.Warn("notification sound unavailable: %v", err)
		return false
	}
	if _, err := s.deps.Player.Play(ctx, artifact); err != nil && !errors.Is(err, context.Canceled) {
		s.deps.Log.Warn("notification playback failed: %v", err)
		return false
	}
	return true
}

func (s *Sequencer) showProgress(session *domain.Session, row domain.SentenceRow, position, total int, note string) {
	s.deps.Display.ShowProgress(domain.Progress{
		RowIndex:     row.Index,
		Position:     position,
		Total:        total,
		Pass:         session.Pass,
		TotalPasses:  session.Config.TotalPasses,
		StudyMinutes: s.deps.Clock.Minutes(),
		Note:         note,
	})
}

// showNote refreshes the status line at a pass boundary, pinned to the last
// row of the range.
func (s *Sequencer) showNote(session *domain.Session, rows []domain.SentenceRow, note string) {
	s.showProgress(session, rows[len(rows)-1], len(rows), len(rows), note)
}

func (s *Sequencer) stop(session *domain.Session) error {
	session.Status = domain.SessionStopped
	session.UpdatedAt = s.now()
	s.deps.Log.Info("session %s: stopped", session.ID)
	return nil
}

// ctxSleep sleeps for d or until the context is cancelled.
func ctxSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
