package export

import (
	"strconv"
	"strings"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/utils"
)

// table is one flat output file.
type table struct {
	name   string
	header []string
	rows   func(snap *Snapshot) [][]string
}

var machineHeader = []string{
	"name", "source_file", "rom_of", "clone_of", "is_bios", "is_device", "runnable",
	"is_mechanical", "sample_of", "description", "year", "manufacturer", "driver_status",
	"languages", "players", "series", "category", "subcategory", "is_mature",
	"display_name", "normalized_manufacturer", "normalized_players", "is_parent", "normalized_year",
}

func machineRow(m *catalog.Machine) []string {
	return []string{
		m.Name,
		m.SourceFile,
		m.RomOf,
		m.CloneOf,
		utils.FormatOptionalBool(m.IsBios),
		utils.FormatOptionalBool(m.IsDevice),
		utils.FormatOptionalBool(m.Runnable),
		utils.FormatOptionalBool(m.IsMechanical),
		m.SampleOf,
		m.Description,
		m.Year,
		m.Manufacturer,
		m.DriverStatus,
		JoinLanguages(m.Languages),
		m.Players,
		m.Series,
		m.Category,
		m.Subcategory,
		utils.FormatOptionalBool(m.IsMature),
		m.Derived.Name,
		m.Derived.Manufacturer,
		m.Derived.Players,
		strconv.FormatBool(m.Derived.IsParent),
		m.Derived.Year,
	}
}

// JoinLanguages builds the denormalized language column.
func JoinLanguages(langs []string) string {
	return strings.Join(langs, ", ")
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// childRows flattens one sub-collection of every machine, keeping machine
// name order and insertion order within a machine.
func childRows(snap *Snapshot, fn func(m *catalog.Machine) [][]string) [][]string {
	var out [][]string
	for _, m := range snap.Machines {
		out = append(out, fn(m)...)
	}
	return out
}

var tables = []table{
	{
		name:   "machines",
		header: machineHeader,
		rows: func(snap *Snapshot) [][]string {
			out := make([][]string, len(snap.Machines))
			for i, m := range snap.Machines {
				out[i] = machineRow(m)
			}
			return out
		},
	},
	{
		name:   "roms",
		header: []string{"machine_name", "name", "size", "merge", "status", "crc", "sha1"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.Roms))
				for i, r := range m.Roms {
					rows[i] = []string{m.Name, r.Name, itoa(r.Size), r.Merge, r.Status, r.CRC, r.SHA1}
				}
				return rows
			})
		},
	},
	{
		name:   "bios_sets",
		header: []string{"machine_name", "name", "description"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.BiosSets))
				for i, b := range m.BiosSets {
					rows[i] = []string{m.Name, b.Name, b.Description}
				}
				return rows
			})
		},
	},
	{
		name:   "device_refs",
		header: []string{"machine_name", "name"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.DeviceRefs))
				for i, d := range m.DeviceRefs {
					rows[i] = []string{m.Name, d.Name}
				}
				return rows
			})
		},
	},
	{
		name:   "disks",
		header: []string{"machine_name", "name", "sha1", "merge", "status", "region"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.Disks))
				for i, d := range m.Disks {
					rows[i] = []string{m.Name, d.Name, d.SHA1, d.Merge, d.Status, d.Region}
				}
				return rows
			})
		},
	},
	{
		name:   "softwares",
		header: []string{"machine_name", "name"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.Softwares))
				for i, sw := range m.Softwares {
					rows[i] = []string{m.Name, sw.Name}
				}
				return rows
			})
		},
	},
	{
		name:   "samples",
		header: []string{"machine_name", "name"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.Samples))
				for i, sm := range m.Samples {
					rows[i] = []string{m.Name, sm.Name}
				}
				return rows
			})
		},
	},
	{
		name:   "history_sections",
		header: []string{"machine_name", "name", "text", "order"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.HistorySections))
				for i, h := range m.HistorySections {
					rows[i] = []string{m.Name, h.Name, h.Text, strconv.Itoa(h.Order)}
				}
				return rows
			})
		},
	},
	{
		name:   "resources",
		header: []string{"machine_name", "type", "name", "size", "crc", "sha1"},
		rows: func(snap *Snapshot) [][]string {
			return childRows(snap, func(m *catalog.Machine) [][]string {
				rows := make([][]string, len(m.Resources))
				for i, r := range m.Resources {
					rows[i] = []string{m.Name, r.Type, r.Name, itoa(r.Size), r.CRC, r.SHA1}
				}
				return rows
			})
		},
	},
	{
		name:   "subcategories",
		header: []string{"category", "subcategory", "machines"},
		rows: func(snap *Snapshot) [][]string {
			subs := snap.Indices.Subcategories()
			out := make([][]string, len(subs))
			for i, e := range subs {
				out[i] = []string{e.Category, e.Subcategory, strconv.Itoa(e.Machines)}
			}
			return out
		},
	},
}

func init() {
	for _, fi := range flatIndexes {
		kind := fi.kind
		tables = append(tables, table{
			name:   fi.file,
			header: []string{"name", "machines"},
			rows: func(snap *Snapshot) [][]string {
				entries := snap.Indices.Get(kind).Entries()
				out := make([][]string, len(entries))
				for i, e := range entries {
					out[i] = []string{e.Name, strconv.Itoa(e.Machines)}
				}
				return out
			},
		})
	}
}
