package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// countingBackend records synthesis calls and serves a canned WAV.
type countingBackend struct {
	calls int
	wav   []byte
	err   error
}

func (b *countingBackend) Synthesize(ctx context.Context, text, voiceID, rate string) ([]byte, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	return b.wav, nil
}

func setupSynth(t *testing.T, backend Backend) *Synthesizer {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	cache, err := NewCache(t.TempDir(), log)
	if err != nil {
		t.Fatalf("creating cache: %v", err)
	}
	return NewSynthesizer(backend, cache, log)
}

func TestSynthesizeCachesByContent(t *testing.T) {
	backend := &countingBackend{wav: makeWAV(t, 1.0)}
	synth := setupSynth(t, backend)
	ctx := context.Background()

	first, err := synth.Synthesize(ctx, "I have a dream.", "en-US-JennyNeural", 1.2)
	if err != nil {
		t.Fatalf("first synthesis: %v", err)
	}
	if first == nil || first.Path == "" {
		t.Fatal("expected a cached artifact with a path")
	}

	second, err := synth.Synthesize(ctx, "I have a dream.", "en-US-JennyNeural", 1.2)
	if err != nil {
		t.Fatalf("second synthesis: %v", err)
	}

	if backend.calls != 1 {
		t.Fatalf("backend called %d times, want 1", backend.calls)
	}
	if second.Path != first.Path {
		t.Fatalf("cache paths differ: %q vs %q", first.Path, second.Path)
	}
	if second.Duration != first.Duration {
		t.Fatalf("durations differ: %v vs %v", first.Duration, second.Duration)
	}
}

func TestSynthesizeKeySeparatesVoiceAndRate(t *testing.T) {
	backend := &countingBackend{wav: makeWAV(t, 0.5)}
	synth := setupSynth(t, backend)
	ctx := context.Background()

	paths := map[string]bool{}
	requests := []struct {
		voice string
		speed float64
	}{
		{"en-US-JennyNeural", 1.0},
		{"en-US-GuyNeural", 1.0},
		{"en-US-JennyNeural", 1.2},
	}
	for _, r := range requests {
		a, err := synth.Synthesize(ctx, "same text", r.voice, r.speed)
		if err != nil {
			t.Fatalf("synthesize %s/%v: %v", r.voice, r.speed, err)
		}
		paths[a.Path] = true
	}

	if len(paths) != 3 {
		t.Fatalf("expected 3 distinct cache paths, got %d", len(paths))
	}
	if backend.calls != 3 {
		t.Fatalf("backend called %d times, want 3", backend.calls)
	}
}

func TestSynthesizePreconditions(t *testing.T) {
	backend := &countingBackend{wav: makeWAV(t, 0.5)}
	synth := setupSynth(t, backend)
	ctx := context.Background()

	tests := []struct {
		name  string
		text  string
		voice string
	}{
		{"empty text", "", "en-US-JennyNeural"},
		{"whitespace text", "   ", "en-US-JennyNeural"},
		{"empty voice", "hello", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := synth.Synthesize(ctx, tt.text, tt.voice, 1.0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a != nil {
				t.Fatal("expected nil artifact")
			}
		})
	}
	if backend.calls != 0 {
		t.Fatalf("backend called %d times, want 0", backend.calls)
	}
}

func TestSynthesizeBackendError(t *testing.T) {
	wantErr := errors.New("service unavailable")
	synth := setupSynth(t, &countingBackend{err: wantErr})

	_, err := synth.Synthesize(context.Background(), "hello", "en-US-JennyNeural", 1.0)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestCachePurge(t *testing.T) {
	backend := &countingBackend{wav: makeWAV(t, 0.5)}
	synth := setupSynth(t, backend)
	ctx := context.Background()

	if _, err := synth.Synthesize(ctx, "hello", "en-US-JennyNeural", 1.0); err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	synth.Purge()

	// Same request after purge must hit the backend again.
	if _, err := synth.Synthesize(ctx, "hello", "en-US-JennyNeural", 1.0); err != nil {
		t.Fatalf("synthesize after purge: %v", err)
	}
	if backend.calls != 2 {
		t.Fatalf("backend called %d times, want 2", backend.calls)
	}
}
