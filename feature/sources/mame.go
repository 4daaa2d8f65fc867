package sources

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/normalize"
	"arcade-catalog/core/utils"
)

type mameNamed struct {
	Name string `xml:"name,attr"`
}

type mameRom struct {
	Name   string `xml:"name,attr"`
	Size   string `xml:"size,attr"`
	Merge  string `xml:"merge,attr"`
	Status string `xml:"status,attr"`
	CRC    string `xml:"crc,attr"`
	SHA1   string `xml:"sha1,attr"`
}

type mameDisk struct {
	Name   string `xml:"name,attr"`
	SHA1   string `xml:"sha1,attr"`
	Merge  string `xml:"merge,attr"`
	Status string `xml:"status,attr"`
	Region string `xml:"region,attr"`
}

type mameBiosSet struct {
	Name        string `xml:"name,attr"`
	Description string `xml:"description,attr"`
}

type mameDriver struct {
	Status string `xml:"status,attr"`
}

// mameMachine mirrors one <machine> element of the MAME listxml output.
type mameMachine struct {
	Name         string `xml:"name,attr"`
	SourceFile   string `xml:"sourcefile,attr"`
	RomOf        string `xml:"romof,attr"`
	CloneOf      string `xml:"cloneof,attr"`
	IsBios       string `xml:"isbios,attr"`
	IsDevice     string `xml:"isdevice,attr"`
	Runnable     string `xml:"runnable,attr"`
	IsMechanical string `xml:"ismechanical,attr"`
	SampleOf     string `xml:"sampleof,attr"`

	Description  string        `xml:"description"`
	Year         string        `xml:"year"`
	Manufacturer string        `xml:"manufacturer"`
	BiosSets     []mameBiosSet `xml:"biosset"`
	Roms         []mameRom     `xml:"rom"`
	DeviceRefs   []mameNamed   `xml:"device_ref"`
	Softwares    []mameNamed   `xml:"softwarelist"`
	Samples      []mameNamed   `xml:"sample"`
	Disks        []mameDisk    `xml:"disk"`
	Driver       *mameDriver   `xml:"driver"`
}

// MAMEReader reads the MAME XML catalog. It is the only reader that creates
// machines.
type MAMEReader struct{}

func (MAMEReader) Kind() Kind { return KindMAME }

func (MAMEReader) Read(r io.Reader, s *catalog.Store) (Result, error) {
	res := Result{Source: KindMAME}
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("failed to parse catalog: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "machine" {
			continue
		}

		var mm mameMachine
		if err := dec.DecodeElement(&mm, &se); err != nil {
			return res, fmt.Errorf("failed to decode machine: %w", err)
		}
		if mm.Name == "" {
			res.Skipped++
			continue
		}
		fillMachine(s.Create(mm.Name), &mm)
		res.Applied++
	}
}

func fillMachine(m *catalog.Machine, mm *mameMachine) {
	m.SourceFile = mm.SourceFile
	m.RomOf = mm.RomOf
	m.CloneOf = mm.CloneOf
	m.IsBios = utils.OptionalBool(mm.IsBios)
	m.IsDevice = utils.OptionalBool(mm.IsDevice)
	m.Runnable = utils.OptionalBool(mm.Runnable)
	m.IsMechanical = utils.OptionalBool(mm.IsMechanical)
	m.SampleOf = mm.SampleOf

	m.Description = mm.Description
	m.Year = mm.Year
	m.Manufacturer = mm.Manufacturer
	if mm.Driver != nil {
		m.DriverStatus = mm.Driver.Status
	}

	for _, b := range mm.BiosSets {
		m.BiosSets = append(m.BiosSets, catalog.BiosSet{Name: b.Name, Description: b.Description})
	}
	for _, r := range mm.Roms {
		m.Roms = append(m.Roms, catalog.Rom{
			Name:   r.Name,
			Size:   utils.ToInt64(r.Size),
			Merge:  r.Merge,
			Status: r.Status,
			CRC:    r.CRC,
			SHA1:   r.SHA1,
		})
	}
	for _, d := range mm.DeviceRefs {
		m.DeviceRefs = append(m.DeviceRefs, catalog.DeviceRef{Name: d.Name})
	}
	for _, sw := range mm.Softwares {
		m.Softwares = append(m.Softwares, catalog.Software{Name: sw.Name})
	}
	for _, sm := range mm.Samples {
		m.Samples = append(m.Samples, catalog.Sample{Name: sm.Name})
	}
	for _, d := range mm.Disks {
		m.Disks = append(m.Disks, catalog.Disk{
			Name:   d.Name,
			SHA1:   d.SHA1,
			Merge:  d.Merge,
			Status: d.Status,
			Region: d.Region,
		})
	}

	m.Derived = catalog.Derived{
		IsParent: !(m.CloneOf != "" || m.SampleOf != ""),
		Year:     normalize.Year(m.Year),
	}
}
