// Package utils provides common conversion helpers for the arcade-catalog
// application. Source readers use them to parse loosely typed attribute
// values, and exporters use them to render optional fields.
package utils
