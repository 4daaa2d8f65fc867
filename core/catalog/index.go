package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// IndexKind names one of the derived frequency indices.
type IndexKind string

const (
	IndexSeries        IndexKind = "series"
	IndexManufacturers IndexKind = "manufacturers"
	IndexPlayers       IndexKind = "players"
	IndexLanguages     IndexKind = "languages"
	IndexCategories    IndexKind = "categories"
	IndexSubcategories IndexKind = "subcategories"
)

// IndexKinds lists every index in export order.
var IndexKinds = []IndexKind{
	IndexSeries,
	IndexManufacturers,
	IndexPlayers,
	IndexLanguages,
	IndexCategories,
	IndexSubcategories,
}

// ParseIndexKind resolves an index name.
func ParseIndexKind(s string) (IndexKind, error) {
	for _, k := range IndexKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown index: %s", s)
}

// Entry is one name and the number of machines counted under it.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Machines int    `json:"machines" yaml:"machines"`
}

// SubcategoryEntry is a subcategory index entry split back into its parts.
type SubcategoryEntry struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Machines    int    `json:"machines"`
}

// SubcategoryKey joins a category and subcategory into a subcategory index key.
func SubcategoryKey(category, subcategory string) string {
	return category + " - " + subcategory
}

// Index maps a name to an occurrence count.
type Index struct {
	counts map[string]int
}

func newIndex() *Index {
	return &Index{counts: make(map[string]int)}
}

func (ix *Index) add(name string) {
	if name == "" {
		return
	}
	ix.counts[name]++
}

// Count returns the count stored for name.
func (ix *Index) Count(name string) int {
	return ix.counts[name]
}

// Len returns the number of distinct names.
func (ix *Index) Len() int {
	return len(ix.counts)
}

// Names returns every key in ascending order.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.counts))
	for name := range ix.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every entry ordered by name.
func (ix *Index) Entries() []Entry {
	names := ix.Names()
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = Entry{Name: name, Machines: ix.counts[name]}
	}
	return out
}

// Top returns at most k entries ordered by descending count, then by name.
func (ix *Index) Top(k int) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	entries := ix.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Machines > entries[j].Machines
	})
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Indices is the full set of derived indices. It is rebuilt from scratch
// after any pass that changes the machine population or its classification.
type Indices struct {
	indexes       map[IndexKind]*Index
	subcategories map[string]SubcategoryEntry
}

// NewIndices creates an empty index set.
func NewIndices() *Indices {
	ix := &Indices{}
	ix.reset()
	return ix
}

func (ix *Indices) reset() {
	ix.indexes = make(map[IndexKind]*Index, len(IndexKinds))
	for _, k := range IndexKinds {
		ix.indexes[k] = newIndex()
	}
	ix.subcategories = make(map[string]SubcategoryEntry)
}

// RebuildAll clears every index and recounts them in one scan of s.
func (ix *Indices) RebuildAll(s *Store) {
	ix.reset()
	s.Each(func(m *Machine) {
		ix.indexes[IndexSeries].add(m.Series)
		ix.indexes[IndexManufacturers].add(m.Derived.Manufacturer)
		ix.indexes[IndexCategories].add(m.Category)
		if m.Category != "" && m.Subcategory != "" {
			key := SubcategoryKey(m.Category, m.Subcategory)
			ix.indexes[IndexSubcategories].add(key)
			ix.subcategories[key] = SubcategoryEntry{Category: m.Category, Subcategory: m.Subcategory}
		}
		for _, token := range SplitList(m.Derived.Players) {
			ix.indexes[IndexPlayers].add(token)
		}
		for _, lang := range m.Languages {
			ix.indexes[IndexLanguages].add(lang)
		}
	})
}

// Get returns the index of the given kind.
func (ix *Indices) Get(kind IndexKind) *Index {
	if idx, ok := ix.indexes[kind]; ok {
		return idx
	}
	return newIndex()
}

// Top returns the k highest-count entries of the given index.
func (ix *Indices) Top(kind IndexKind, k int) []Entry {
	return ix.Get(kind).Top(k)
}

// Subcategories returns the subcategory index with its keys split back into
// category and subcategory, ordered by category then subcategory.
func (ix *Indices) Subcategories() []SubcategoryEntry {
	idx := ix.indexes[IndexSubcategories]
	out := make([]SubcategoryEntry, 0, len(ix.subcategories))
	for key, e := range ix.subcategories {
		e.Machines = idx.Count(key)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Subcategory < out[j].Subcategory
	})
	return out
}

// SplitList splits a comma-joined value into trimmed, non-empty tokens.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
