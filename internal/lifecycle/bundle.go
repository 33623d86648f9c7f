// Package lifecycle ties resources that are acquired together to a single
// release operation.
package lifecycle

import (
	"sync"

	"go.uber.org/zap"
)

type resource struct {
	name    string
	release func()
}

// Bundle owns a set of resources and releases all of them exactly once.
// The zero value is ready to use.
type Bundle struct {
	mu        sync.Mutex
	resources []resource
	released  bool
	counter   *Counter
	log       *zap.Logger
}

// NewBundle returns a Bundle that reports to counter (may be nil) and logs
// releases at debug level.
func NewBundle(counter *Counter, log *zap.Logger) *Bundle {
	return &Bundle{counter: counter, log: log}
}

// Acquire records a resource. If the bundle was already released, the
// resource is released immediately so it cannot outlive its owner.
func (b *Bundle) Acquire(name string, release func()) {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		b.counter.acquired(name)
		b.run(resource{name: name, release: release})
		return
	}
	b.resources = append(b.resources, resource{name: name, release: release})
	b.mu.Unlock()
	b.counter.acquired(name)
}

// Release releases every resource in reverse acquisition order. Only the
// first call has an effect.
func (b *Bundle) Release() {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return
	}
	b.released = true
	rs := b.resources
	b.resources = nil
	b.mu.Unlock()

	for i := len(rs) - 1; i >= 0; i-- {
		b.run(rs[i])
	}
}

// Released reports whether Release has been called.
func (b *Bundle) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

// Len returns the number of resources currently held.
func (b *Bundle) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.resources)
}

func (b *Bundle) run(r resource) {
	if r.release != nil {
		r.release()
	}
	b.counter.released(r.name)
	if b.log != nil {
		b.log.Debug("released", zap.String("resource", r.name))
	}
}

// Counter tallies acquisitions and releases across bundles. A nil Counter
// counts nothing.
type Counter struct {
	mu       sync.Mutex
	acquires int
	releases int
	live     map[string]int
}

// Acquired returns the total number of acquisitions.
func (c *Counter) Acquired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquires
}

// Releases returns the total number of releases.
func (c *Counter) Releases() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releases
}

// Live returns the names of resources acquired but not yet released, with
// their outstanding counts.
func (c *Counter) Live() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.live))
	for k, v := range c.live {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

func (c *Counter) acquired(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live == nil {
		c.live = make(map[string]int)
	}
	c.acquires++
	c.live[name]++
}

func (c *Counter) released(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live == nil {
		c.live = make(map[string]int)
	}
	c.releases++
	c.live[name]--
}
