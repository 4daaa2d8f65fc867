package catalog

import "sync"

// Catalog owns the machine store and its derived indices. Every pass over
// the data runs inside Exclusive and holds the lock for its whole duration.
type Catalog struct {
	mu      sync.Mutex
	store   *Store
	indices *Indices
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		store:   NewStore(),
		indices: NewIndices(),
	}
}

// Exclusive runs fn with sole access to the store and indices.
func (c *Catalog) Exclusive(fn func(s *Store, ix *Indices) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.store, c.indices)
}

// Rebuild recomputes every derived index from the current store.
func (c *Catalog) Rebuild() {
	_ = c.Exclusive(func(s *Store, ix *Indices) error {
		ix.RebuildAll(s)
		return nil
	})
}

// Len returns the number of machines.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Machine returns a copy of the named machine.
func (c *Catalog) Machine(name string) (Machine, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.store.Get(name)
	if !ok {
		return Machine{}, false
	}
	return *m, true
}

// Top returns the k highest-count entries of an index. It fails with
// ErrNoData when nothing is loaded.
func (c *Catalog) Top(kind IndexKind, k int) ([]Entry, error) {
	var out []Entry
	err := c.Exclusive(func(s *Store, ix *Indices) error {
		if s.Len() == 0 {
			return ErrNoData
		}
		out = ix.Top(kind, k)
		return nil
	})
	return out, err
}

// Stats computes the summary report for the loaded catalog.
func (c *Catalog) Stats() (Stats, error) {
	var st Stats
	err := c.Exclusive(func(s *Store, ix *Indices) error {
		var err error
		st, err = ComputeStats(s, ix)
		return err
	})
	return st, err
}
