package speech

import (
	"context"
	"strings"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Synthesizer turns sentences into playable artifacts, consulting the disk
// cache before the backend. Empty text or an empty voice yields no artifact
// and no error: the caller simply has nothing to play.
type Synthesizer struct {
	backend Backend
	cache   *Cache
	log     *logger.Logger
}

var _ domain.Synthesizer = (*Synthesizer)(nil)

// NewSynthesizer wires a backend to the cache.
func NewSynthesizer(backend Backend, cache *Cache, log *logger.Logger) *Synthesizer {
	return &Synthesizer{backend: backend, cache: cache, log: log}
}

// Synthesize returns an artifact for the given text, voice and speed. Cache
// hits skip the backend entirely.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voiceID string, speed float64) (*domain.Artifact, error) {
	text = strings.TrimSpace(text)
	if text == "" || voiceID == "" {
		return nil, nil
	}

	rate := RateString(speed)
	key := s.cache.Key(text, voiceID, rate)

	if a, ok := s.cache.Get(key, voiceID); ok {
		return a, nil
	}

	data, err := s.backend.Synthesize(ctx, text, voiceID, rate)
	if err != nil {
		return nil, err
	}

	return s.cache.Put(key, voiceID, data), nil
}

// Purge clears the synthesis cache, logging its final hit ratio.
func (s *Synthesizer) Purge() {
	hits, misses := s.cache.Stats()
	s.log.Info("synthesis cache: %d hits, %d misses", hits, misses)
	s.cache.Purge()
}
