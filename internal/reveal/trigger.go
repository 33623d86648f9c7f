package reveal

import (
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/logging"
)

// Trigger marks elements revealed the first time they become visible and
// then stops watching them. The set of revealed elements only grows.
type Trigger struct {
	threshold float64
	now       func() time.Time
	log       *zap.Logger

	observer *Observer
	revealed map[Handle]time.Time
	next     Handle
}

// NewTrigger returns a Trigger using threshold and the clock now (time.Now
// when nil).
func NewTrigger(threshold float64, now func() time.Time, log *zap.Logger) *Trigger {
	if now == nil {
		now = time.Now
	}
	log = logging.OrNop(log)
	return &Trigger{
		threshold: threshold,
		now:       now,
		log:       log,
		revealed:  make(map[Handle]time.Time),
	}
}

// NewHandle allocates a handle that has never been registered.
func (t *Trigger) NewHandle() Handle {
	t.next++
	return t.next
}

// Register starts watching h. Revealed handles are not watched again.
func (t *Trigger) Register(h Handle, b Bounds) {
	if _, done := t.revealed[h]; done {
		return
	}
	if t.observer == nil {
		t.observer = NewObserver(t.threshold, t.onIntersect)
	}
	t.observer.Observe(h, b)
}

func (t *Trigger) onIntersect(entries []Entry) {
	at := t.now()
	for _, e := range entries {
		if _, done := t.revealed[e.Handle]; done {
			continue
		}
		t.revealed[e.Handle] = at
		t.observer.Unobserve(e.Handle)
		t.log.Debug("revealed", zap.Uint64("handle", uint64(e.Handle)), zap.Float64("fraction", e.Fraction))
	}
}

// Check runs one intersection pass against the visible part of the page.
func (t *Trigger) Check(view Rect) {
	if t.observer != nil {
		t.observer.Check(view)
	}
}

// Revealed reports whether h has been revealed and when.
func (t *Trigger) Revealed(h Handle) (time.Time, bool) {
	at, ok := t.revealed[h]
	return at, ok
}

// Watching reports whether h is still observed.
func (t *Trigger) Watching(h Handle) bool {
	return t.observer != nil && t.observer.Observing(h)
}

// Watched returns the number of observed elements.
func (t *Trigger) Watched() int {
	if t.observer == nil {
		return 0
	}
	return t.observer.Len()
}

// Forget stops watching handles that are no longer on screen, such as the
// elements of a page that was switched away from.
func (t *Trigger) Forget(hs ...Handle) {
	if t.observer == nil {
		return
	}
	for _, h := range hs {
		t.observer.Unobserve(h)
	}
}

// Teardown disconnects the observer. It is safe to call with no
// registrations and more than once.
func (t *Trigger) Teardown() {
	if t.observer == nil {
		return
	}
	t.observer.Disconnect()
	t.observer = nil
}
