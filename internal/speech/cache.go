package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Cache is the on-disk synthesis cache. Entries are WAV files at a
// deterministic path derived from (voice, rate, content hash), so repeated
// drills of the same sentence at the same speed reuse one backend call.
//
// Entries persist across playbacks within a run; the player never deletes
// them. Best-effort purged at session end via Purge.
type Cache struct {
	dir string
	log *logger.Logger

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewCache creates a disk cache rooted at dir, creating it if needed.
func NewCache(dir string, log *logger.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}
	return &Cache{dir: dir, log: log}, nil
}

// Key derives the cache key for a (text, voice, rate) triple.
func (c *Cache) Key(text, voiceID, rate string) string {
	content := sha256.Sum256([]byte(text))
	h := sha256.Sum256([]byte(voiceID + "|" + rate + "|" + hex.EncodeToString(content[:])))
	return hex.EncodeToString(h[:])
}

// Path returns the deterministic artifact path for a key.
func (c *Cache) Path(key string) string {
	return filepath.Join(c.dir, key+".wav")
}

// Get returns the cached artifact for a key, or nil and false.
func (c *Cache) Get(key, voiceID string) (*domain.Artifact, bool) {
	path := c.Path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		c.count(&c.misses)
		return nil, false
	}

	dur, err := wavDuration(data)
	if err != nil {
		// A corrupt entry is treated as a miss; the overwrite on Put heals it.
		c.log.Warn("cache: malformed entry %s: %v", key[:12], err)
		c.count(&c.misses)
		return nil, false
	}

	c.count(&c.hits)
	c.log.Debug("cache hit: %s (%d bytes)", key[:12], len(data))
	return &domain.Artifact{
		Path:     path,
		Data:     data,
		Duration: dur,
		VoiceID:  voiceID,
	}, true
}

// Put stores synthesized audio under a key and returns the artifact. If the
// disk write fails the artifact is returned transient (in-memory only) so
// playback still proceeds.
func (c *Cache) Put(key, voiceID string, data []byte) *domain.Artifact {
	dur, err := wavDuration(data)
	if err != nil {
		dur = estimateDuration(data)
	}

	path := c.Path(key)
	a := &domain.Artifact{
		Path:     path,
		Data:     data,
		Duration: dur,
		VoiceID:  voiceID,
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.Error("cache: disk write failed for %s: %v", path, err)
		a.Transient = true
		a.Path = ""
		return a
	}

	c.log.Debug("cache store: %s (%d bytes)", key[:12], len(data))
	return a
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Purge removes all cache entries. Best-effort: failures are logged and
// swallowed, leftover files are an acceptable degraded condition.
func (c *Cache) Purge() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.log.Warn("cache: purge read failed: %v", err)
		return
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".wav" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err == nil {
			removed++
		}
	}
	c.log.Debug("cache: purged %d entries", removed)
}

func (c *Cache) count(field *int64) {
	c.mu.Lock()
	*field++
	c.mu.Unlock()
}

// estimateDuration approximates playback time for audio whose header could
// not be parsed, assuming the default synthesis format.
func estimateDuration(data []byte) time.Duration {
	byteRate := SampleRate * ChannelCount * BitDepth / 8
	secs := float64(len(data)) / float64(byteRate)
	return time.Duration(secs * float64(time.Second))
}
