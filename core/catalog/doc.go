// Package catalog holds the in-memory machine graph and its derived indices.
//
// # Store
//
// The Store is the single collection of Machine entities keyed by name. Only
// the MAME catalog reader creates machines; every other source reader joins
// into existing entries by name and drops records naming unknown machines.
//
// # Indices
//
// Indices are name to count tables (series, manufacturers, players, languages,
// categories, subcategories). They are never patched incrementally: call
// RebuildAll after ingestion, after every filter pass and after normalization.
//
// # Catalog
//
// Catalog is the context object passed to readers, filters and exporters. It
// guards the store with one mutex held for a whole pass.
//
//	cat := catalog.New()
//	err := cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
//	    ix.RebuildAll(s)
//	    return nil
//	})
package catalog
