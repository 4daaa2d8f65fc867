package sources

import (
	"io"
	"strings"

	"arcade-catalog/core/catalog"
)

const matureMarker = " * Mature *"

// CatverReader reads catver.ini lines of the form
// "name=Category / Subcategory[ * Mature *]".
type CatverReader struct{}

func (CatverReader) Kind() Kind { return KindCatver }

func (CatverReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	res := Result{Source: KindCatver}
	lineNo := 0
	err := scanLines(r, func(line string) error {
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == ';' {
			return nil
		}
		if _, ok, err := sectionHeader(trimmed, lineNo); ok || err != nil {
			return err
		}

		name, value, ok := splitKeyValue(trimmed)
		if !ok {
			res.Skipped++
			return nil
		}

		mature := strings.HasSuffix(value, matureMarker)
		value = strings.TrimSpace(strings.TrimSuffix(value, matureMarker))

		parts := strings.Split(value, " / ")
		if len(parts) < 2 {
			res.Skipped++
			return nil
		}

		m, ok := s.Get(name)
		if !ok {
			res.Skipped++
			return nil
		}
		m.Category = strings.TrimSpace(parts[0])
		m.Subcategory = strings.TrimSpace(parts[1])
		m.IsMature = catalog.BoolPtr(mature)
		res.Applied++
		return nil
	})
	return res, err
}
