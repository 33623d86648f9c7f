package site

import (
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/logging"
)

// Scroller performs the scroll-to-top side effect of a page switch.
type Scroller interface {
	ScrollToTop()
}

// Listener is told about every page switch, after the state has changed.
type Listener func(from, to Page)

// Coordinator is the single writer of State.
type Coordinator struct {
	state     State
	scroller  Scroller
	listeners []Listener
	log       *zap.Logger
}

// NewCoordinator returns a Coordinator starting from initial.
func NewCoordinator(initial State, scroller Scroller, log *zap.Logger) *Coordinator {
	log = logging.OrNop(log)
	return &Coordinator{state: initial, scroller: scroller, log: log}
}

// OnChange registers l for page switches.
func (c *Coordinator) OnChange(l Listener) {
	c.listeners = append(c.listeners, l)
}

// State returns a copy of the current state.
func (c *Coordinator) State() State { return c.state }

// Page returns the selected page.
func (c *Coordinator) Page() Page { return c.state.Page }

// Navigate selects target. On a switch it scrolls to the top once and
// notifies listeners; selecting the current page does nothing.
func (c *Coordinator) Navigate(target Page) bool {
	from := c.state.Page
	next, changed := Navigate(c.state, target)
	if !changed {
		return false
	}
	c.state = next
	if c.scroller != nil {
		c.scroller.ScrollToTop()
	}
	c.log.Debug("navigate", zap.Stringer("from", from), zap.Stringer("to", target))
	for _, l := range c.listeners {
		l(from, target)
	}
	return true
}

// Advance applies time-driven transitions.
func (c *Coordinator) Advance(now time.Time) {
	wasLoading := c.state.Loading
	c.state = FinishLoading(c.state, now)
	if wasLoading && !c.state.Loading {
		c.log.Debug("splash finished")
	}
}
