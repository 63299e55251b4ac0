package speech

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/lingodrill/internal/logger"
)

func TestAssetsSynthesizeOnce(t *testing.T) {
	dir := t.TempDir()
	backend := &countingBackend{wav: makeWAV(t, 0.5)}
	log := logger.New(logger.LevelOff, nil)
	assets := NewAssets(dir, "ko-KR-SunHiNeural", backend, log)
	ctx := context.Background()

	first, err := assets.BreakSound(ctx)
	if err != nil {
		t.Fatalf("break sound: %v", err)
	}
	if first.Transient {
		t.Fatal("notification assets must persist across sessions")
	}
	if _, err := os.Stat(filepath.Join(dir, BreakSoundFile)); err != nil {
		t.Fatalf("asset file missing: %v", err)
	}

	// A later session finds the file and never calls the backend again.
	if _, err := assets.BreakSound(ctx); err != nil {
		t.Fatalf("second break sound: %v", err)
	}
	if backend.calls != 1 {
		t.Fatalf("backend called %d times, want 1", backend.calls)
	}
}

func TestAssetsDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	backend := &countingBackend{wav: makeWAV(t, 0.5)}
	log := logger.New(logger.LevelOff, nil)
	assets := NewAssets(dir, "ko-KR-SunHiNeural", backend, log)
	ctx := context.Background()

	if _, err := assets.BreakSound(ctx); err != nil {
		t.Fatalf("break sound: %v", err)
	}
	if _, err := assets.BreakAnnouncement(ctx); err != nil {
		t.Fatalf("announcement: %v", err)
	}
	if _, err := assets.FinalSound(ctx); err != nil {
		t.Fatalf("final sound: %v", err)
	}

	for _, name := range []string{BreakSoundFile, BreakVoiceFile, FinalSoundFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("asset %s missing: %v", name, err)
		}
	}
	if backend.calls != 3 {
		t.Fatalf("backend called %d times, want 3", backend.calls)
	}
}

func TestAssetsNoBackend(t *testing.T) {
	assets := NewAssets(t.TempDir(), "ko-KR-SunHiNeural", nil, logger.New(logger.LevelOff, nil))

	if _, err := assets.FinalSound(context.Background()); err == nil {
		t.Fatal("expected error with no file and no backend")
	}
}
