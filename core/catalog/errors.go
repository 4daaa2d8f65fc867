package catalog

import (
	"errors"
	"fmt"
)

// ErrNoData is returned by operations that need a loaded catalog.
var ErrNoData = errors.New("no machines data loaded, please read the data first")

// NotNormalizedError reports a machine whose derived values are missing at
// export time.
type NotNormalizedError struct {
	Machine string
	Field   string
}

func (e *NotNormalizedError) Error() string {
	return fmt.Sprintf("machine %s has no derived %s, run normalization before exporting", e.Machine, e.Field)
}

// RequireNormalized returns a *NotNormalizedError for the first machine
// (by name) lacking derived values.
func RequireNormalized(machines []*Machine) error {
	for _, m := range machines {
		if m.Derived.Players == "" {
			return &NotNormalizedError{Machine: m.Name, Field: "players"}
		}
	}
	return nil
}
