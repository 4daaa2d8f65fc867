// Package filter removes non-arcade machines from a catalog.
//
// A filter is a closed Kind with one predicate: device, bios, mechanical,
// modified (bootlegs, prototypes, PlayChoice-10 and Nintendo Super System
// sets, invalid manufacturer or player data), clones and categories (missing
// category or a denylisted one). KindAll ORs every other kind.
//
// # Plan and Apply
//
// Filtering works in two steps, so a pass can be previewed:
//
//	plan, err := filter.BuildPlan(store, filter.KindClones)
//	removed := filter.ApplyPlan(store, plan, filter.Options{Confirmed: true})
//
// ApplyPlan does nothing unless Confirmed is set and DryRun is not. Filters
// never cascade: removing a parent keeps its clones and vice versa.
//
// After any pass that removed machines the derived indices are stale. Run
// handles that by rebuilding them under the catalog lock.
package filter
