package speech

import (
	"context"
	"time"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Synthesizer = (*NoopSynthesizer)(nil)
	_ domain.Player      = (*NoopPlayer)(nil)
)

// NoopSynthesizer produces no audio. Used when speech credentials are
// missing, which degrades the session to subtitle-only pacing.
type NoopSynthesizer struct {
	log *logger.Logger
}

// NewNoopSynthesizer creates a synthesizer that never produces audio.
func NewNoopSynthesizer(log *logger.Logger) *NoopSynthesizer {
	return &NoopSynthesizer{log: log}
}

// Synthesize returns no artifact and no error; the sequencer falls back to
// its fixed pause for the repetition.
func (n *NoopSynthesizer) Synthesize(ctx context.Context, text, voiceID string, speed float64) (*domain.Artifact, error) {
	n.log.Debug("speech no-op: would synthesize %q (voice=%s)", text, voiceID)
	return nil, nil
}

// NoopPlayer simulates playback by waiting out the artifact duration. Used
// when no audio device is available so subtitle timing stays intact.
type NoopPlayer struct {
	log *logger.Logger
}

// NewNoopPlayer creates a player that waits instead of playing.
func NewNoopPlayer(log *logger.Logger) *NoopPlayer {
	return &NoopPlayer{log: log}
}

// Play waits for the artifact's duration plus the settle margin.
func (n *NoopPlayer) Play(ctx context.Context, a *domain.Artifact) (time.Duration, error) {
	if a == nil {
		return 0, nil
	}
	start := time.Now()
	select {
	case <-ctx.Done():
		return time.Since(start), ctx.Err()
	case <-time.After(a.Duration + SettleMargin):
	}
	return time.Since(start), nil
}

// Stop does nothing.
func (n *NoopPlayer) Stop() {}
