package speech

import (
	"bytes"
	"context"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Player handles blocking playback of WAV artifacts via oto. Play returns
// only after the audio has finished (plus the settle margin), was stopped,
// or the context was cancelled.
type Player struct {
	ctx *oto.Context
	log *logger.Logger

	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
}

var _ domain.Player = (*Player)(nil)

// NewPlayer creates an audio player. Initializes the system audio context.
// Returns ErrNoAudioDevice if the audio device is unavailable.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		log.Error("audio device init failed: %v", err)
		return nil, domain.ErrNoAudioDevice
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// Play plays an artifact synchronously and returns the elapsed wall time.
// A nil artifact is a no-op. Transient artifacts have their backing file
// removed after playback.
func (p *Player) Play(ctx context.Context, a *domain.Artifact) (time.Duration, error) {
	if a == nil || len(a.Data) == 0 {
		return 0, nil
	}
	// Only one playback at a time: interrupt whatever is still active.
	p.Stop()
	defer p.cleanup(a)

	pcm, err := extractPCM(a.Data)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	p.active = player
	p.mu.Unlock()

	player.Play()
	p.log.Debug("playing %d bytes of PCM (%.1fs)", len(pcm), a.Duration.Seconds())

	// Wait for playback to complete, be interrupted, or be cancelled.
	interrupted := false
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			interrupted = true
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.mu.Lock()
	p.active = nil
	p.mu.Unlock()

	if err := player.Close(); err != nil {
		return time.Since(start), err
	}
	if interrupted {
		return time.Since(start), ctx.Err()
	}

	// Settle before the caller moves on, so back-to-back sentences do not
	// run together.
	select {
	case <-ctx.Done():
		return time.Since(start), ctx.Err()
	case <-time.After(SettleMargin):
	}
	return time.Since(start), nil
}

// Stop interrupts the currently playing audio, if any. Safe to call
// concurrently and when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("audio player: interrupted")
	}
}

// cleanup removes the backing file of a transient artifact. Cached
// artifacts are left alone; the cache owns their lifetime.
func (p *Player) cleanup(a *domain.Artifact) {
	if !a.Transient || a.Path == "" {
		return
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		p.log.Warn("could not remove transient audio %s: %v", a.Path, err)
	}
}
