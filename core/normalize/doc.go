// Package normalize derives cleaned values from raw machine fields.
//
// Manufacturer, DisplayName, Players and Year are pure functions. Apply runs
// them over a whole store and writes the results into Machine.Derived, so
// the raw values stay available and the pass can be repeated safely.
package normalize
