package normalize

import (
	"regexp"
	"strings"
)

const noiseTokens = `Games|Corp|Inc|Ltd|Co|Corporation|Industries|Elc|S\.R\.L|S\.A|inc|of America|Japan|UK|USA|Europe|do Brasil|du Canada|Canada|America|Austria|of`

var (
	reNoiseWords    = regexp.MustCompile(`(?i)\b(` + noiseTokens + `)\b\.?`)
	reTrailingPunct = regexp.MustCompile(`[.,?]+$|-$`)
	reNeedsCleaning = regexp.MustCompile(`[\(/,?]|(` + noiseTokens + `)`)
)

// Manufacturer cleans a raw manufacturer string: it keeps the part before
// the first "(" or "/", drops legal suffixes and regional qualifiers, and
// maps "<unknown>" to "Unknown". Clean values are returned unchanged.
func Manufacturer(raw string) string {
	cur := cleanManufacturer(raw)
	for {
		next := cleanManufacturer(cur)
		if next == cur {
			return cur
		}
		cur = next
	}
}

func cleanManufacturer(s string) string {
	if i := strings.IndexAny(s, "(/"); i >= 0 {
		s = s[:i]
	}

	if reNeedsCleaning.MatchString(s) {
		s = reNoiseWords.ReplaceAllString(s, "")
		s = reTrailingPunct.ReplaceAllString(s, "")
	}

	s = strings.ReplaceAll(s, "?", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "<unknown>", "Unknown")
	return strings.TrimSpace(s)
}
