package game

import (
	"math"

	"github.com/iburimskiy/nmbk-site/internal/config"
)

// scroller eases the page offset toward a target, like smooth scrolling in
// a browser.
type scroller struct {
	pos    float64
	target float64
	limit  float64
	tops   int
}

// ScrollToTop implements site.Scroller.
func (s *scroller) ScrollToTop() {
	s.target = 0
	s.tops++
}

func (s *scroller) scrollTo(y float64) { s.target = s.clamp(y) }

func (s *scroller) scrollBy(dy float64) { s.target = s.clamp(s.target + dy) }

// setLimit sets the largest reachable offset for a page of contentH in a
// viewport of viewH.
func (s *scroller) setLimit(contentH, viewH float64) {
	s.limit = max(contentH-viewH, 0)
	s.target = s.clamp(s.target)
	s.pos = s.clamp(s.pos)
}

func (s *scroller) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, s.limit))
}

// step moves one frame toward the target.
func (s *scroller) step() {
	d := s.target - s.pos
	if math.Abs(d) < 0.5 {
		s.pos = s.target
		return
	}
	s.pos += d * config.ScrollEase
}
