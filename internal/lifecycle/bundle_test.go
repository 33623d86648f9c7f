package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBundle_ReleasesInReverseOrderOnce(t *testing.T) {
	var order []string
	b := NewBundle(nil, zap.NewNop())
	b.Acquire("surface", func() { order = append(order, "surface") })
	b.Acquire("geometry", func() { order = append(order, "geometry") })
	b.Acquire("material", func() { order = append(order, "material") })
	assert.Equal(t, 3, b.Len())

	b.Release()
	b.Release()

	assert.Equal(t, []string{"material", "geometry", "surface"}, order)
	assert.True(t, b.Released())
	assert.Zero(t, b.Len())
}

func TestBundle_AcquireAfterRelease(t *testing.T) {
	var c Counter
	b := NewBundle(&c, nil)
	b.Release()

	released := false
	b.Acquire("late", func() { released = true })

	assert.True(t, released)
	assert.Equal(t, 1, c.Acquired())
	assert.Equal(t, 1, c.Releases())
	assert.Empty(t, c.Live())
}

func TestBundle_NilRelease(t *testing.T) {
	var c Counter
	var b Bundle
	b.counter = &c
	b.Acquire("listener", nil)
	b.Release()
	assert.Equal(t, c.Acquired(), c.Releases())
}

func TestCounter_AlternatingBundlesNeverLeak(t *testing.T) {
	var c Counter
	for i := 0; i < 5; i++ {
		b := NewBundle(&c, nil)
		b.Acquire("surface", func() {})
		b.Acquire("scene", func() {})
		assert.Equal(t, map[string]int{"surface": 1, "scene": 1}, c.Live())
		b.Release()
		assert.Equal(t, c.Acquired(), c.Releases())
	}
	assert.Equal(t, 10, c.Acquired())
	assert.Empty(t, c.Live())
}
