package export

import (
	"arcade-catalog/core/catalog"
)

// Snapshot is the sorted view of a catalog handed to exporters. It is only
// valid while the catalog lock is held.
type Snapshot struct {
	Machines []*catalog.Machine
	Indices  *catalog.Indices
}

// NewSnapshot checks export preconditions and orders machines by name.
func NewSnapshot(s *catalog.Store, ix *catalog.Indices) (*Snapshot, error) {
	if s.Len() == 0 {
		return nil, catalog.ErrNoData
	}
	machines := s.Sorted()
	if err := catalog.RequireNormalized(machines); err != nil {
		return nil, err
	}
	return &Snapshot{Machines: machines, Indices: ix}, nil
}

// flatIndexes are the indices exported as plain name/count lists.
var flatIndexes = []struct {
	file string
	kind catalog.IndexKind
}{
	{"manufacturers", catalog.IndexManufacturers},
	{"series", catalog.IndexSeries},
	{"languages", catalog.IndexLanguages},
	{"players", catalog.IndexPlayers},
	{"categories", catalog.IndexCategories},
}
