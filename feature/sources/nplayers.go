package sources

import (
	"io"
	"strings"

	"arcade-catalog/core/catalog"
)

// NPlayersReader reads nplayers.ini "name=value" lines. The value is stored
// verbatim; translating it is left to normalization.
type NPlayersReader struct{}

func (NPlayersReader) Kind() Kind { return KindNPlayers }

func (NPlayersReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	res := Result{Source: KindNPlayers}
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
		if !ok || name == "" {
			res.Skipped++
			return nil
		}

		m, ok := s.Get(name)
		if !ok {
			res.Skipped++
			return nil
		}
		m.Players = value
		res.Applied++
		return nil
	})
	return res, err
}
