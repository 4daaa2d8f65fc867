package catalog

import "sort"

// Store is the collection of machines keyed by name. It is not safe for
// concurrent use; access it through Catalog.Exclusive.
type Store struct {
	machines map[string]*Machine
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{machines: make(map[string]*Machine)}
}

// Create inserts a new machine and returns it. A machine already stored
// under the same name is replaced.
func (s *Store) Create(name string) *Machine {
	m := &Machine{Name: name}
	s.machines[name] = m
	return m
}

// Get returns the machine stored under name.
func (s *Store) Get(name string) (*Machine, bool) {
	m, ok := s.machines[name]
	return m, ok
}

// Remove deletes the machine stored under name. Missing names are ignored.
func (s *Store) Remove(name string) {
	delete(s.machines, name)
}

// RemoveAll deletes every listed machine and returns how many existed.
func (s *Store) RemoveAll(names []string) int {
	n := 0
	for _, name := range names {
		if _, ok := s.machines[name]; ok {
			delete(s.machines, name)
			n++
		}
	}
	return n
}

// Len returns the number of machines.
func (s *Store) Len() int {
	return len(s.machines)
}

// Each calls fn for every machine in unspecified order.
func (s *Store) Each(fn func(*Machine)) {
	for _, m := range s.machines {
		fn(m)
	}
}

// Sorted returns all machines ordered by name.
func (s *Store) Sorted() []*Machine {
	out := make([]*Machine, 0, len(s.machines))
	for _, m := range s.machines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Clear removes every machine.
func (s *Store) Clear() {
	s.machines = make(map[string]*Machine)
}
