package normalize

import (
	"strings"

	"arcade-catalog/core/catalog"
)

// Year maps partially known years such as "198?" to "Unknown".
func Year(raw string) string {
	if strings.Contains(raw, "?") {
		return "Unknown"
	}
	return raw
}

// Apply writes the derived values of every machine in s and returns the
// number of machines processed. Raw fields are left untouched, so Apply may
// be run any number of times.
func Apply(s *catalog.Store) int {
	n := 0
	s.Each(func(m *catalog.Machine) {
		m.Derived.Name = DisplayName(m.Description)
		if m.Manufacturer != "" {
			m.Derived.Manufacturer = Manufacturer(m.Manufacturer)
		}
		m.Derived.Players = Players(m.Players)
		m.Derived.Year = Year(m.Year)
		n++
	})
	return n
}
