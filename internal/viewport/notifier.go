// Package viewport fans window size changes out to the components that
// size themselves from the window.
package viewport

// Size is a width/height pair in device-independent pixels.
type Size struct {
	W, H int
}

type subscription struct {
	id int
	fn func(w, h int)
}

// Notifier is not safe for concurrent use; it is driven from ebiten's Layout.
type Notifier struct {
	subs   []subscription
	nextID int
	last   Size
	seen   bool
}

// Subscribe registers fn for resize notifications. The returned func removes
// the subscription and may be called more than once.
func (n *Notifier) Subscribe(fn func(w, h int)) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers the size to every subscriber if it differs from the last
// notified size. It reports whether subscribers were called.
func (n *Notifier) Notify(w, h int) bool {
	size := Size{W: w, H: h}
	if n.seen && size == n.last {
		return false
	}
	n.seen = true
	n.last = size
	subs := append([]subscription(nil), n.subs...)
	for _, s := range subs {
		if !n.subscribed(s.id) {
			continue
		}
		s.fn(w, h)
	}
	return true
}

func (n *Notifier) subscribed(id int) bool {
	for _, s := range n.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Last returns the most recently notified size.
func (n *Notifier) Last() (Size, bool) { return n.last, n.seen }

// Len returns the number of subscribers.
func (n *Notifier) Len() int { return len(n.subs) }
