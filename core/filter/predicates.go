package filter

import (
	"strings"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/normalize"
)

// Predicate reports whether a machine should be removed.
type Predicate func(m *catalog.Machine) bool

var (
	modifiedKeywords     = []string{"bootleg", "PlayChoice-10", "Nintendo Super System", "prototype"}
	invalidManufacturers = []string{"unknown", "bootleg"}
	invalidPlayers       = []string{"BIOS", "Device", "Non-arcade"}
)

// allKinds is the evaluation order of the composite filter.
var allKinds = []Kind{KindDevice, KindBios, KindMechanical, KindModified, KindClones, KindCategories}

var predicates = map[Kind]Predicate{
	KindDevice:     func(m *catalog.Machine) bool { return catalog.Flag(m.IsDevice) },
	KindBios:       func(m *catalog.Machine) bool { return catalog.Flag(m.IsBios) },
	KindMechanical: func(m *catalog.Machine) bool { return catalog.Flag(m.IsMechanical) },
	KindModified:   isModified,
	KindClones:     func(m *catalog.Machine) bool { return m.IsClone() },
	KindCategories: isExcludedCategory,
}

// Match reports whether kind k removes m.
func (k Kind) Match(m *catalog.Machine) bool {
	_, ok := k.reason(m)
	return ok
}

// reason returns the concrete filter responsible for a match. For KindAll
// it is the first matching filter in allKinds order.
func (k Kind) reason(m *catalog.Machine) (Kind, bool) {
	if k == KindAll {
		for _, sub := range allKinds {
			if predicates[sub](m) {
				return sub, true
			}
		}
		return "", false
	}
	p, ok := predicates[k]
	if !ok || !p(m) {
		return "", false
	}
	return k, true
}

func isModified(m *catalog.Machine) bool {
	return containsFold(m.Description, modifiedKeywords) ||
		hasInvalidManufacturer(m) ||
		containsFold(m.Players, invalidPlayers)
}

func hasInvalidManufacturer(m *catalog.Machine) bool {
	cleaned := m.Derived.Manufacturer
	if cleaned == "" {
		cleaned = normalize.Manufacturer(m.Manufacturer)
	}
	return containsFold(cleaned, invalidManufacturers)
}

func isExcludedCategory(m *catalog.Machine) bool {
	if m.Category == "" {
		return true
	}
	_, denied := categoryDenylist[m.Category]
	return denied
}

func containsFold(s string, needles []string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
