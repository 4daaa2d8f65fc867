package sources

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/utils"
)

// ResourcesReader reads the resource dat. Each <machine name="section">
// groups <rom name="section\file.ext"/> entries; an entry is kept only when
// its first path segment equals the section, and it attaches to the machine
// named by the file stem.
type ResourcesReader struct{}

func (ResourcesReader) Kind() Kind { return KindResources }

func (ResourcesReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	res := Result{Source: KindResources}
	dec := xml.NewDecoder(r)
	section := ""

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("failed to parse resources: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "machine":
			section = attr(se, "name")
		case "rom":
			if attachResource(s, section, se) {
				res.Applied++
			} else {
				res.Skipped++
			}
		}
	}
}

func attachResource(s *catalog.Store, section string, se xml.StartElement) bool {
	name := attr(se, "name")
	parts := strings.Split(name, `\`)
	if section == "" || len(parts) < 2 || parts[0] != section {
		return false
	}

	key, _, _ := strings.Cut(parts[1], ".")
	m, ok := s.Get(key)
	if !ok {
		return false
	}

	m.Resources = append(m.Resources, catalog.Resource{
		Type: section,
		Name: name,
		Size: utils.ToInt64(attr(se, "size")),
		CRC:  attr(se, "crc"),
		SHA1: attr(se, "sha1"),
	})
	return true
}
