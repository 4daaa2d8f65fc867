package sources

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"arcade-catalog/core/catalog"
)

// historyHeadings maps the known section headings to their display order.
var historyHeadings = map[string]int{
	"- DESCRIPTION -":     1,
	"- TECHNICAL -":       2,
	"- TRIVIA -":          3,
	"- UPDATES -":         4,
	"- SCORING -":         5,
	"- TIPS AND TRICKS -": 6,
	"- SERIES -":          7,
	"- STAFF -":           8,
	"- PORTS -":           9,
	"- CONTRIBUTE -":      10,
}

// reHeading matches heading-shaped lines outside the known set.
var reHeading = regexp.MustCompile(`^- [A-Z][A-Z0-9 &'/]* -$`)

const defaultSection = "description"

// HistoryReader reads history.xml. Each <entry> lists one or more
// <system name="..."/> elements and a <text> block; every listed machine
// present in the store receives its own copy of the parsed sections.
type HistoryReader struct{}

func (HistoryReader) Kind() Kind { return KindHistory }

func (HistoryReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	res := Result{Source: KindHistory}
	dec := xml.NewDecoder(r)

	var (
		inEntry  bool
		systems  []string
		sections []catalog.HistorySection
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("failed to parse history: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "entry":
				inEntry = true
				systems = systems[:0]
				sections = nil
			case "system":
				if inEntry {
					systems = append(systems, attr(t, "name"))
				}
			case "text":
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return res, fmt.Errorf("failed to decode history text: %w", err)
				}
				if inEntry {
					sections = ParseHistoryText(text)
				}
			}
		case xml.EndElement:
			if t.Name.Local != "entry" {
				continue
			}
			inEntry = false
			for _, name := range systems {
				m, ok := s.Get(name)
				if !ok {
					res.Skipped++
					continue
				}
				m.HistorySections = append([]catalog.HistorySection(nil), sections...)
				res.Applied++
			}
		}
	}
}

// ParseHistoryText splits a history text block into sections. Text before
// the first heading belongs to the description section. Sections without
// text are dropped.
func ParseHistoryText(text string) []catalog.HistorySection {
	var (
		sections []catalog.HistorySection
		buf      strings.Builder
		name     = defaultSection
		order    = 1
	)

	flush := func() {
		body := strings.TrimSpace(buf.String())
		if body != "" {
			sections = append(sections, catalog.HistorySection{Name: name, Text: body, Order: order})
		}
		buf.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		heading := strings.TrimSpace(line)
		if o, ok := historyHeadings[heading]; ok || reHeading.MatchString(heading) {
			flush()
			name = sectionName(heading)
			order = 1
			if ok {
				order = o
			}
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush()
	return sections
}

func sectionName(heading string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(heading, "-", "")))
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
