package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScroller_EasesAndClamps(t *testing.T) {
	var s scroller
	s.setLimit(2000, 800)

	s.scrollBy(5000)
	assert.Equal(t, 1200.0, s.target)
	for i := 0; i < 200; i++ {
		s.step()
	}
	assert.Equal(t, 1200.0, s.pos)

	s.ScrollToTop()
	s.step()
	assert.Less(t, s.pos, 1200.0)
	assert.Greater(t, s.pos, 0.0)
	for i := 0; i < 200; i++ {
		s.step()
	}
	assert.Zero(t, s.pos)
	assert.Equal(t, 1, s.tops)

	s.scrollBy(-100)
	assert.Zero(t, s.target)
}

func TestScroller_ShrinkingLimit(t *testing.T) {
	var s scroller
	s.setLimit(3000, 800)
	s.scrollTo(2000)
	s.pos = 2000
	s.setLimit(1000, 800)
	assert.Equal(t, 200.0, s.pos)
	assert.Equal(t, 200.0, s.target)

	s.setLimit(500, 800)
	assert.Zero(t, s.limit)
}
