package speech

import (
	"context"
	"testing"

	"github.com/hammamikhairi/lingodrill/internal/logger"
)

func TestPlayerStopWhenIdle(t *testing.T) {
	// Play interrupts any prior playback before starting, which means Stop
	// must be safe when nothing is active.
	p := &Player{log: logger.New(logger.LevelOff, nil)}
	p.Stop()
	p.Stop()

	if elapsed, err := p.Play(context.Background(), nil); elapsed != 0 || err != nil {
		t.Fatalf("nil artifact: elapsed=%v err=%v, want 0 and nil", elapsed, err)
	}
}
