package filter

import (
	"sort"

	"arcade-catalog/core/catalog"
)

// Remover deletes machines by name.
type Remover interface {
	Remove(name string)
}

// batchRemover is implemented by targets that can drop many keys at once.
type batchRemover interface {
	RemoveAll(names []string) int
}

// BuildPlan scans the store and lists every machine matched by any of the
// given kinds. It does NOT remove anything; use ApplyPlan for that.
func BuildPlan(s *catalog.Store, kinds ...Kind) (*Plan, error) {
	if s.Len() == 0 {
		return nil, catalog.ErrNoData
	}

	plan := &Plan{
		Kinds:   kinds,
		Actions: []Action{},
		Summary: PlanSummary{ByReason: make(map[Kind]int)},
	}

	s.Each(func(m *catalog.Machine) {
		plan.Summary.Scanned++
		for _, k := range kinds {
			if reason, ok := k.reason(m); ok {
				plan.Actions = append(plan.Actions, Action{Key: m.Name, Reason: reason})
				plan.Summary.ByReason[reason]++
				return
			}
		}
	})

	sort.Slice(plan.Actions, func(i, j int) bool { return plan.Actions[i].Key < plan.Actions[j].Key })
	plan.Summary.Removals = len(plan.Actions)
	return plan, nil
}

// ApplyPlan removes the planned machines and returns how many were removed.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(target Remover, plan *Plan, opts Options) int {
	if !opts.Confirmed || opts.DryRun || plan == nil || len(plan.Actions) == 0 {
		return 0
	}

	keys := make([]string, len(plan.Actions))
	for i, a := range plan.Actions {
		keys[i] = a.Key
	}

	if br, ok := target.(batchRemover); ok {
		return br.RemoveAll(keys)
	}
	for _, key := range keys {
		target.Remove(key)
	}
	return len(keys)
}

// Remove runs one filter pass: it computes the remove-set for kind, removes
// it and returns the count removed. Derived indices are not touched; callers
// must rebuild them afterwards.
func Remove(s *catalog.Store, kind Kind) (int, error) {
	plan, err := BuildPlan(s, kind)
	if err != nil {
		return 0, err
	}
	return ApplyPlan(s, plan, Options{Confirmed: true}), nil
}

// Run plans and optionally applies a filter pass on the catalog while
// holding its lock. Indices are rebuilt whenever machines were removed.
func Run(cat *catalog.Catalog, opts Options, kinds ...Kind) (*Plan, int, error) {
	var (
		plan    *Plan
		removed int
	)
	err := cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
		var err error
		plan, err = BuildPlan(s, kinds...)
		if err != nil {
			return err
		}
		removed = ApplyPlan(s, plan, opts)
		if removed > 0 {
			ix.RebuildAll(s)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return plan, removed, nil
}
