package sources

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// scanLines calls fn for every line of r with the trailing CR and a leading
// UTF-8 BOM removed.
func scanLines(r io.Reader, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// splitKeyValue splits a "key=value" line on its first "=".
func splitKeyValue(line string) (string, string, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// sectionHeader recognizes a "[Label]" line. A header missing its closing
// bracket is a structural error.
func sectionHeader(trimmed string, lineNo int) (string, bool, error) {
	if trimmed == "" || trimmed[0] != '[' {
		return "", false, nil
	}
	if !strings.HasSuffix(trimmed, "]") {
		return "", true, fmt.Errorf("line %d: unterminated section header %q", lineNo, trimmed)
	}
	return strings.TrimSpace(trimmed[1 : len(trimmed)-1]), true, nil
}
