package content

import "sync/atomic"

// Store publishes the current catalog to the game goroutine.
type Store struct {
	v       atomic.Pointer[Catalog]
	version atomic.Uint64
}

// NewStore returns a Store holding c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.Set(c)
	return s
}

// Get returns the current catalog.
func (s *Store) Get() *Catalog { return s.v.Load() }

// Set replaces the catalog.
func (s *Store) Set(c *Catalog) {
	s.v.Store(c)
	s.version.Add(1)
}

// Version increases on every Set.
func (s *Store) Version() uint64 { return s.version.Load() }
