package studytime

import (
	"context"
	"time"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Tracker accumulates study time and flushes whole minutes to the ledger.
// Flushes happen only once at least 60 seconds have elapsed since the last
// flush; the fractional remainder is dropped and the anchor resets to now,
// so persistence is rate-limited to at most once a minute.
type Tracker struct {
	store *Store
	log   *logger.Logger
	clock func() time.Time

	anchor  time.Time
	minutes int
}

var _ domain.StudyClock = (*Tracker)(nil)

// NewTracker creates a tracker anchored at the current time, primed with
// today's minutes from the ledger.
func NewTracker(ctx context.Context, store *Store, log *logger.Logger) (*Tracker, error) {
	t := &Tracker{store: store, log: log, clock: store.clock}

	today, err := store.Today(ctx)
	if err != nil {
		return nil, err
	}
	t.minutes = today
	t.anchor = t.clock()
	return t, nil
}

// Tick flushes elapsed whole minutes to the ledger if at least one has
// accumulated since the last flush. Called once per sentence.
func (t *Tracker) Tick(ctx context.Context) error {
	elapsed := t.clock().Sub(t.anchor)
	if elapsed < time.Minute {
		return nil
	}

	add := int(elapsed / time.Minute)
	total, err := t.store.Add(ctx, add)
	if err != nil {
		return err
	}
	t.minutes = total
	t.anchor = t.clock()
	t.log.Debug("study time: +%d min (today %d)", add, total)
	return nil
}

// Minutes returns today's total, including flushed minutes from earlier
// sessions.
func (t *Tracker) Minutes() int {
	return t.minutes
}
