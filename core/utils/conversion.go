package utils

import (
	"strconv"
	"strings"
)

// ToInt64 parses a decimal attribute value. Malformed or empty strings
// yield 0 instead of an error.
func ToInt64(s string) int64 {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return i
}

// ToBool is true for "yes", "1" and "true", case-insensitively.
func ToBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "yes" || s == "1" || s == "true"
}

// OptionalBool returns nil for an empty string and the parsed flag otherwise.
func OptionalBool(s string) *bool {
	if s == "" {
		return nil
	}
	b := ToBool(s)
	return &b
}

// FormatOptionalBool renders a flag for flat exports; nil becomes "".
func FormatOptionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
