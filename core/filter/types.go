package filter

import (
	"fmt"
	"strings"
)

// Kind names a removal filter.
type Kind string

const (
	// KindDevice removes device machines.
	KindDevice Kind = "device"
	// KindBios removes BIOS sets.
	KindBios Kind = "bios"
	// KindMechanical removes mechanical machines.
	KindMechanical Kind = "mechanical"
	// KindModified removes bootlegs, prototypes and machines with invalid
	// manufacturer or player data.
	KindModified Kind = "modified"
	// KindClones removes machines referencing a parent set.
	KindClones Kind = "clones"
	// KindCategories removes uncategorized machines and denylisted categories.
	KindCategories Kind = "categories"
	// KindAll removes anything matched by any of the filters above.
	KindAll Kind = "all"
)

// Kinds lists every filter kind.
var Kinds = []Kind{KindDevice, KindBios, KindMechanical, KindModified, KindClones, KindCategories, KindAll}

// ParseKind resolves a filter name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown filter: %s", s)
}

// ParseKinds resolves a list of filter names, skipping empty entries.
func ParseKinds(names []string) ([]Kind, error) {
	var kinds []Kind
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Action is one planned removal.
type Action struct {
	// Key is the machine name.
	Key string `json:"key"`

	// Reason is the first filter that matched the machine.
	Reason Kind `json:"reason"`
}

// Plan lists the machines a filter pass would remove.
type Plan struct {
	// Kinds are the filters the plan was built from.
	Kinds []Kind `json:"kinds"`

	// Actions are sorted by machine name.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a filter plan.
type PlanSummary struct {
	// Scanned is the number of machines evaluated.
	Scanned int `json:"scanned"`

	// Removals is the number of machines matched.
	Removals int `json:"removals"`

	// ByReason counts removals per matching filter.
	ByReason map[Kind]int `json:"by_reason"`
}

// Options controls whether a plan is executed.
type Options struct {
	// DryRun prevents any removal if true.
	DryRun bool

	// Confirmed must be set for removals to execute.
	Confirmed bool
}
