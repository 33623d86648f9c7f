// Package reveal fades page elements in the first time they scroll into
// view.
package reveal

// Handle identifies an observed element.
type Handle uint64

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Area returns the rectangle area, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// VisibleFraction returns the share of r's area that lies inside view.
func (r Rect) VisibleFraction(view Rect) float64 {
	a := r.Area()
	if a == 0 {
		return 0
	}
	return r.Intersect(view).Area() / a
}

// Bounds reports an element's current rectangle.
type Bounds func() Rect

// Entry describes an observed element whose visible fraction crossed the
// observer threshold.
type Entry struct {
	Handle   Handle
	Fraction float64
}

type target struct {
	handle Handle
	bounds Bounds
}

// Observer tracks elements and reports those that are more than Threshold
// visible whenever Check runs.
type Observer struct {
	threshold float64
	callback  func([]Entry)
	targets   []target
	index     map[Handle]int
	closed    bool
}

// NewObserver returns an Observer that calls cb with the entries found by
// each Check.
func NewObserver(threshold float64, cb func([]Entry)) *Observer {
	return &Observer{
		threshold: threshold,
		callback:  cb,
		index:     make(map[Handle]int),
	}
}

// Observe starts tracking h. Observing a tracked handle replaces its bounds.
func (o *Observer) Observe(h Handle, b Bounds) {
	if o.closed {
		return
	}
	if i, ok := o.index[h]; ok {
		o.targets[i].bounds = b
		return
	}
	o.index[h] = len(o.targets)
	o.targets = append(o.targets, target{handle: h, bounds: b})
}

// Unobserve stops tracking h.
func (o *Observer) Unobserve(h Handle) {
	i, ok := o.index[h]
	if !ok {
		return
	}
	delete(o.index, h)
	o.targets = append(o.targets[:i], o.targets[i+1:]...)
	for j := i; j < len(o.targets); j++ {
		o.index[o.targets[j].handle] = j
	}
}

// Disconnect stops tracking everything. The observer ignores later calls
// to Observe.
func (o *Observer) Disconnect() {
	o.targets = nil
	o.index = make(map[Handle]int)
	o.closed = true
}

// Len returns the number of tracked elements.
func (o *Observer) Len() int { return len(o.targets) }

// Observing reports whether h is tracked.
func (o *Observer) Observing(h Handle) bool {
	_, ok := o.index[h]
	return ok
}

// Check measures every tracked element against view and delivers the
// entries above the threshold in one callback.
func (o *Observer) Check(view Rect) {
	if o.closed || len(o.targets) == 0 {
		return
	}
	var entries []Entry
	for _, t := range o.targets {
		f := t.bounds().VisibleFraction(view)
		if f > o.threshold {
			entries = append(entries, Entry{Handle: t.handle, Fraction: f})
		}
	}
	if len(entries) > 0 && o.callback != nil {
		o.callback(entries)
	}
}
