package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Notification asset filenames under the base directory. These outlive the
// synthesis cache: once created they are reused across sessions.
const (
	BreakSoundFile = "break.wav"
	BreakVoiceFile = "break_voice.wav"
	FinalSoundFile = "final.wav"
)

// Assets manages the notification sounds played around breaks and at the
// end of a pass. Missing files are synthesized once from fixed phrases.
type Assets struct {
	dir     string
	voiceID string
	backend Backend
	log     *logger.Logger
}

// NewAssets creates an asset manager rooted at dir, synthesizing missing
// sounds with the given announcement voice.
func NewAssets(dir, voiceID string, backend Backend, log *logger.Logger) *Assets {
	return &Assets{dir: dir, voiceID: voiceID, backend: backend, log: log}
}

// BreakSound returns the break notification artifact, synthesizing the file
// if it does not exist yet.
func (a *Assets) BreakSound(ctx context.Context) (*domain.Artifact, error) {
	return a.ensure(ctx, BreakSoundFile, LineChime())
}

// BreakAnnouncement returns the spoken rest-break phrase, synthesizing the
// file if it does not exist yet.
func (a *Assets) BreakAnnouncement(ctx context.Context) (*domain.Artifact, error) {
	return a.ensure(ctx, BreakVoiceFile, LineBreak())
}

// FinalSound returns the end-of-pass artifact, synthesizing the file if it
// does not exist yet.
func (a *Assets) FinalSound(ctx context.Context) (*domain.Artifact, error) {
	return a.ensure(ctx, FinalSoundFile, LineSetComplete())
}

func (a *Assets) ensure(ctx context.Context, name, phrase string) (*domain.Artifact, error) {
	path := filepath.Join(a.dir, name)

	data, err := os.ReadFile(path)
	if err == nil {
		return a.artifact(path, data), nil
	}

	if a.backend == nil {
		return nil, fmt.Errorf("notification sound %s missing and no backend to create it", name)
	}

	a.log.Info("notification sound %s missing, synthesizing", name)
	data, err = a.backend.Synthesize(ctx, phrase, a.voiceID, RateString(1.0))
	if err != nil {
		return nil, fmt.Errorf("synthesizing %s: %w", name, err)
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating asset dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		// Keep the audio for this session even if the file could not be kept.
		a.log.Warn("could not persist %s: %v", name, err)
	}
	return a.artifact(path, data), nil
}

func (a *Assets) artifact(path string, data []byte) *domain.Artifact {
	dur, err := wavDuration(data)
	if err != nil {
		dur = estimateDuration(data)
	}
	return &domain.Artifact{
		Path:     path,
		Data:     data,
		Duration: dur,
		VoiceID:  a.voiceID,
	}
}
