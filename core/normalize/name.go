package normalize

import (
	"strings"
	"unicode"
)

// DisplayName builds a display title from a machine description.
func DisplayName(description string) string {
	s := strings.ReplaceAll(description, "?", "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(titleCase(s))
}

// titleCase upper-cases the first letter of every word and leaves the rest
// of the string untouched.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	next := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			next = true
		case next:
			r = unicode.ToUpper(r)
			next = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
