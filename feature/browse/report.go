package browse

import (
	"time"

	"arcade-catalog/core/catalog"
)

// Report is the stats summary plus the top entries of every index.
type Report struct {
	Stats catalog.Stats                         `json:"stats" yaml:"stats"`
	Top   map[catalog.IndexKind][]catalog.Entry `json:"top" yaml:"top"`
	Built time.Time                             `json:"built" yaml:"built"`
}

// BuildReport computes a report under a single hold of the catalog lock.
func BuildReport(cat *catalog.Catalog, k int) (*Report, error) {
	report := &Report{Top: make(map[catalog.IndexKind][]catalog.Entry, len(catalog.IndexKinds))}
	err := cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
		st, err := catalog.ComputeStats(s, ix)
		if err != nil {
			return err
		}
		report.Stats = st
		for _, kind := range catalog.IndexKinds {
			report.Top[kind] = ix.Top(kind, k)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.Built = time.Now()
	return report, nil
}
