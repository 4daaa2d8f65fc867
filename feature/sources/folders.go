package sources

import (
	"io"
	"strings"

	"arcade-catalog/core/catalog"
)

// folderSettings are section headers that carry frontend settings rather
// than a label.
var folderSettings = map[string]struct{}{
	"[FOLDER_SETTINGS]": {},
	"[ROOT_FOLDER]":     {},
}

// readFolders walks an INI file made of "[Label]" headers followed by bare
// machine names and calls attach for every name found in the store.
func readFolders(kind Kind, r io.Reader, s *catalog.Store, attach func(m *catalog.Machine, label string)) (Result, error) {
	res := Result{Source: kind}
	label := ""
	lineNo := 0

	err := scanLines(r, func(line string) error {
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == ';' {
			return nil
		}

		header, ok, err := sectionHeader(trimmed, lineNo)
		if err != nil {
			return err
		}
		if ok {
			label = header
			if _, settings := folderSettings[trimmed]; settings {
				label = ""
			}
			return nil
		}

		if label == "" {
			return nil
		}

		m, ok := s.Get(trimmed)
		if !ok {
			res.Skipped++
			return nil
		}
		attach(m, label)
		res.Applied++
		return nil
	})
	return res, err
}

// SeriesReader reads series.ini. A machine listed under several series
// keeps the last one.
type SeriesReader struct{}

func (SeriesReader) Kind() Kind { return KindSeries }

func (SeriesReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	return readFolders(KindSeries, r, s, func(m *catalog.Machine, label string) {
		m.Series = label
	})
}

// LanguagesReader reads languages.ini. Every listing appends a language,
// duplicates included.
type LanguagesReader struct{}

func (LanguagesReader) Kind() Kind { return KindLanguages }

func (LanguagesReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	return readFolders(KindLanguages, r, s, func(m *catalog.Machine, label string) {
		m.Languages = append(m.Languages, label)
	})
}
