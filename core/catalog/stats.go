package catalog

// Stats summarizes the loaded catalog.
type Stats struct {
	Machines      int `json:"machines" yaml:"machines"`
	Originals     int `json:"originals" yaml:"originals"`
	Clones        int `json:"clones" yaml:"clones"`
	Series        int `json:"series" yaml:"series"`
	Manufacturers int `json:"manufacturers" yaml:"manufacturers"`
	Players       int `json:"players" yaml:"players"`
	Languages     int `json:"languages" yaml:"languages"`
	Categories    int `json:"categories" yaml:"categories"`
	Subcategories int `json:"subcategories" yaml:"subcategories"`
	WithHistory   int `json:"with_history" yaml:"with_history"`
	WithResources int `json:"with_resources" yaml:"with_resources"`
}

// ComputeStats counts machines and index sizes. It returns ErrNoData for an
// empty store.
func ComputeStats(s *Store, ix *Indices) (Stats, error) {
	if s.Len() == 0 {
		return Stats{}, ErrNoData
	}

	st := Stats{
		Machines:      s.Len(),
		Series:        ix.Get(IndexSeries).Len(),
		Manufacturers: ix.Get(IndexManufacturers).Len(),
		Players:       ix.Get(IndexPlayers).Len(),
		Languages:     ix.Get(IndexLanguages).Len(),
		Categories:    ix.Get(IndexCategories).Len(),
		Subcategories: ix.Get(IndexSubcategories).Len(),
	}
	s.Each(func(m *Machine) {
		if m.Derived.IsParent {
			st.Originals++
		} else {
			st.Clones++
		}
		if len(m.HistorySections) > 0 {
			st.WithHistory++
		}
		if len(m.Resources) > 0 {
			st.WithResources++
		}
	})
	return st, nil
}
