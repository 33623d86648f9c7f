package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/nmbk-site/internal/config"
)

func fixed(r Rect) Bounds { return func() Rect { return r } }

func TestRect_VisibleFraction(t *testing.T) {
	view := Rect{X: 0, Y: 0, W: 100, H: 100}
	assert.Equal(t, 1.0, Rect{X: 10, Y: 10, W: 20, H: 20}.VisibleFraction(view))
	assert.Equal(t, 0.5, Rect{X: 0, Y: 90, W: 100, H: 20}.VisibleFraction(view))
	assert.Equal(t, 0.0, Rect{X: 0, Y: 200, W: 10, H: 10}.VisibleFraction(view))
	assert.Equal(t, 0.0, Rect{}.VisibleFraction(view))
}

func TestObserver_ThresholdIsExclusive(t *testing.T) {
	var got []Entry
	o := NewObserver(0.1, func(es []Entry) { got = append(got, es...) })
	o.Observe(1, fixed(Rect{Y: 90, W: 100, H: 100})) // exactly 10% visible
	o.Observe(2, fixed(Rect{Y: 80, W: 100, H: 100})) // 20% visible

	o.Check(Rect{W: 100, H: 100})

	require.Len(t, got, 1)
	assert.Equal(t, Handle(2), got[0].Handle)
	assert.InDelta(t, 0.2, got[0].Fraction, 1e-9)
}

func TestObserver_UnobserveAndDisconnect(t *testing.T) {
	calls := 0
	o := NewObserver(0, func([]Entry) { calls++ })
	o.Observe(1, fixed(Rect{W: 1, H: 1}))
	o.Observe(2, fixed(Rect{W: 1, H: 1}))
	o.Observe(3, fixed(Rect{W: 1, H: 1}))

	o.Unobserve(2)
	o.Unobserve(2)
	assert.Equal(t, 2, o.Len())
	assert.True(t, o.Observing(3))
	assert.False(t, o.Observing(2))

	o.Unobserve(1)
	assert.True(t, o.Observing(3), "index is kept in sync after removal")

	o.Disconnect()
	o.Observe(4, fixed(Rect{W: 1, H: 1}))
	o.Check(Rect{W: 10, H: 10})
	assert.Zero(t, o.Len())
	assert.Zero(t, calls)
}

func TestTrigger_RevealsOnceAndUnobserves(t *testing.T) {
	clock := time.Unix(50, 0)
	tr := NewTrigger(config.RevealThreshold, func() time.Time { return clock }, nil)
	h := tr.NewHandle()
	bounds := Rect{Y: 1000, W: 100, H: 100}
	tr.Register(h, func() Rect { return bounds })

	tr.Check(Rect{W: 100, H: 500})
	_, ok := tr.Revealed(h)
	assert.False(t, ok)
	assert.True(t, tr.Watching(h))

	bounds.Y = 100
	tr.Check(Rect{W: 100, H: 500})
	at, ok := tr.Revealed(h)
	require.True(t, ok)
	assert.Equal(t, clock, at)
	assert.False(t, tr.Watching(h))

	clock = clock.Add(time.Minute)
	tr.Check(Rect{W: 100, H: 500})
	tr.Register(h, func() Rect { return bounds })
	tr.Check(Rect{W: 100, H: 500})
	at, _ = tr.Revealed(h)
	assert.Equal(t, time.Unix(50, 0), at, "reveal time never changes")
	assert.Zero(t, tr.Watched())
}

func TestTrigger_TeardownWithoutRegistrations(t *testing.T) {
	tr := NewTrigger(0.1, nil, nil)
	assert.NotPanics(t, func() {
		tr.Teardown()
		tr.Teardown()
		tr.Check(Rect{W: 1, H: 1})
	})
}

func TestTrigger_TeardownStopsObserving(t *testing.T) {
	tr := NewTrigger(0.1, nil, nil)
	a, b := tr.NewHandle(), tr.NewHandle()
	assert.NotEqual(t, a, b)
	tr.Register(a, fixed(Rect{Y: 5000, W: 10, H: 10}))
	tr.Register(b, fixed(Rect{Y: 5000, W: 10, H: 10}))
	assert.Equal(t, 2, tr.Watched())

	tr.Forget(a)
	assert.Equal(t, 1, tr.Watched())

	tr.Teardown()
	assert.Zero(t, tr.Watched())
	tr.Check(Rect{Y: 5000, W: 10, H: 10})
	_, ok := tr.Revealed(b)
	assert.False(t, ok)
}

func TestFade(t *testing.T) {
	start := time.Unix(0, 0)

	alpha, off := Fade(time.Time{}, false, start, 0)
	assert.Zero(t, alpha)
	assert.Equal(t, config.RevealRise, off)

	alpha, _ = Fade(start, true, start.Add(100*time.Millisecond), Stagger(1))
	assert.Zero(t, alpha, "still inside the stagger delay")

	alpha, off = Fade(start, true, start.Add(config.RevealDuration/2), 0)
	assert.Greater(t, alpha, 0.5)
	assert.Less(t, off, config.RevealRise)

	alpha, off = Fade(start, true, start.Add(time.Second), 0)
	assert.Equal(t, 1.0, alpha)
	assert.Zero(t, off)

	assert.Equal(t, 300*time.Millisecond, Stagger(2))
}
