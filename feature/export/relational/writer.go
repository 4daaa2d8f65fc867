package relational

import (
	"context"
	"fmt"

	"arcade-catalog/core/catalog"
	"arcade-catalog/feature/export"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of machines written per transaction.
const DefaultBatchSize = 5000

// rowsPerInsert bounds a single multi-row INSERT statement.
const rowsPerInsert = 200

// Writer loads a catalog snapshot into a relational database.
type Writer struct {
	db        *gorm.DB
	batchSize int
	logger    *zap.Logger
}

// NewWriter creates a writer. A non-positive batchSize uses DefaultBatchSize.
func NewWriter(db *gorm.DB, batchSize int, logger *zap.Logger) *Writer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{db: db, batchSize: batchSize, logger: logger}
}

// Name returns the exporter name.
func (w *Writer) Name() string { return "relational" }

// Export recreates the schema and writes snap. Machines and their child rows
// are committed in batches; a machine is never split across batches.
func (w *Writer) Export(ctx context.Context, snap *export.Snapshot) error {
	db := w.db.WithContext(ctx)

	if err := ResetSchema(db); err != nil {
		return err
	}
	if err := writeDimensions(db, snap.Indices); err != nil {
		return err
	}

	batches := 0
	for start := 0; start < len(snap.Machines); start += w.batchSize {
		end := min(start+w.batchSize, len(snap.Machines))
		chunk := snap.Machines[start:end]
		if err := db.Transaction(func(tx *gorm.DB) error {
			return writeMachines(tx, chunk)
		}); err != nil {
			return fmt.Errorf("failed to write machines %d-%d: %w", start, end-1, err)
		}
		batches++
	}

	if err := resolveForeignKeys(db); err != nil {
		return err
	}
	if err := writeJunctions(db); err != nil {
		return err
	}

	w.logger.Info("Relational export written",
		zap.Int("machines", len(snap.Machines)),
		zap.Int("batches", batches),
		zap.String("dialect", db.Dialector.Name()))
	return nil
}

// ResetSchema drops every exported table and creates it again.
func ResetSchema(db *gorm.DB) error {
	models := Models()
	reversed := make([]any, len(models))
	for i, m := range models {
		reversed[len(models)-1-i] = m
	}
	if err := db.Migrator().DropTable(reversed...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func insert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, rowsPerInsert).Error
}

func writeDimensions(db *gorm.DB, ix *catalog.Indices) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := insert(tx, named[Series](ix.Get(catalog.IndexSeries).Names(), func(n string) Series { return Series{Name: n} })); err != nil {
			return fmt.Errorf("failed to write series: %w", err)
		}
		if err := insert(tx, named[Manufacturer](ix.Get(catalog.IndexManufacturers).Names(), func(n string) Manufacturer { return Manufacturer{Name: n} })); err != nil {
			return fmt.Errorf("failed to write manufacturers: %w", err)
		}
		if err := insert(tx, named[Language](ix.Get(catalog.IndexLanguages).Names(), func(n string) Language { return Language{Name: n} })); err != nil {
			return fmt.Errorf("failed to write languages: %w", err)
		}
		if err := insert(tx, named[Player](ix.Get(catalog.IndexPlayers).Names(), func(n string) Player { return Player{Name: n} })); err != nil {
			return fmt.Errorf("failed to write players: %w", err)
		}

		categories := named[Category](ix.Get(catalog.IndexCategories).Names(), func(n string) Category { return Category{Name: n} })
		if err := insert(tx, categories); err != nil {
			return fmt.Errorf("failed to write categories: %w", err)
		}
		categoryIDs := make(map[string]uint, len(categories))
		for _, c := range categories {
			categoryIDs[c.Name] = c.ID
		}

		var subs []Subcategory
		for _, e := range ix.Subcategories() {
			subs = append(subs, Subcategory{Name: e.Subcategory, CategoryID: categoryIDs[e.Category]})
		}
		if err := insert(tx, subs); err != nil {
			return fmt.Errorf("failed to write subcategories: %w", err)
		}
		return nil
	})
}

func named[T any](names []string, fn func(string) T) []T {
	out := make([]T, len(names))
	for i, n := range names {
		out[i] = fn(n)
	}
	return out
}

func machineRow(m *catalog.Machine) Machine {
	return Machine{
		Name:                   m.Name,
		SourceFile:             m.SourceFile,
		RomOf:                  m.RomOf,
		CloneOf:                m.CloneOf,
		IsBios:                 m.IsBios,
		IsDevice:               m.IsDevice,
		Runnable:               m.Runnable,
		IsMechanical:           m.IsMechanical,
		SampleOf:               m.SampleOf,
		Description:            m.Description,
		Year:                   m.Year,
		Manufacturer:           m.Manufacturer,
		DriverStatus:           m.DriverStatus,
		Languages:              export.JoinLanguages(m.Languages),
		Players:                m.Players,
		Series:                 m.Series,
		Category:               m.Category,
		Subcategory:            m.Subcategory,
		IsMature:               m.IsMature,
		DisplayName:            m.Derived.Name,
		NormalizedManufacturer: m.Derived.Manufacturer,
		NormalizedPlayers:      m.Derived.Players,
		IsParent:               m.Derived.IsParent,
		NormalizedYear:         m.Derived.Year,
	}
}

// childSet collects the child rows of one batch.
type childSet struct {
	roms      []Rom
	biosSets  []BiosSet
	devices   []DeviceRef
	softwares []Software
	samples   []Sample
	disks     []Disk
	history   []HistorySection
	resources []Resource
}

func (c *childSet) add(m *catalog.Machine) {
	for _, r := range m.Roms {
		c.roms = append(c.roms, Rom{MachineName: m.Name, Name: r.Name, Size: r.Size, Merge: r.Merge, Status: r.Status, CRC: r.CRC, SHA1: r.SHA1})
	}
	for _, b := range m.BiosSets {
		c.biosSets = append(c.biosSets, BiosSet{MachineName: m.Name, Name: b.Name, Description: b.Description})
	}
	for _, d := range m.DeviceRefs {
		c.devices = append(c.devices, DeviceRef{MachineName: m.Name, Name: d.Name})
	}
	for _, sw := range m.Softwares {
		c.softwares = append(c.softwares, Software{MachineName: m.Name, Name: sw.Name})
	}
	for _, sm := range m.Samples {
		c.samples = append(c.samples, Sample{MachineName: m.Name, Name: sm.Name})
	}
	for _, d := range m.Disks {
		c.disks = append(c.disks, Disk{MachineName: m.Name, Name: d.Name, SHA1: d.SHA1, Merge: d.Merge, Status: d.Status, Region: d.Region})
	}
	for _, h := range m.HistorySections {
		c.history = append(c.history, HistorySection{MachineName: m.Name, Name: h.Name, Text: h.Text, Order: h.Order})
	}
	for _, r := range m.Resources {
		c.resources = append(c.resources, Resource{MachineName: m.Name, Type: r.Type, Name: r.Name, Size: r.Size, CRC: r.CRC, SHA1: r.SHA1})
	}
}

func writeMachines(tx *gorm.DB, machines []*catalog.Machine) error {
	rows := make([]Machine, len(machines))
	var children childSet
	for i, m := range machines {
		rows[i] = machineRow(m)
		children.add(m)
	}

	steps := []struct {
		table string
		fn    func() error
	}{
		{"machines", func() error { return insert(tx, rows) }},
		{"roms", func() error { return insert(tx, children.roms) }},
		{"bios_sets", func() error { return insert(tx, children.biosSets) }},
		{"device_refs", func() error { return insert(tx, children.devices) }},
		{"softwares", func() error { return insert(tx, children.softwares) }},
		{"samples", func() error { return insert(tx, children.samples) }},
		{"disks", func() error { return insert(tx, children.disks) }},
		{"history_sections", func() error { return insert(tx, children.history) }},
		{"resources", func() error { return insert(tx, children.resources) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("failed to write %s: %w", step.table, err)
		}
	}
	return nil
}

// foreignKeyUpdates resolve machine foreign keys from the denormalized columns.
var foreignKeyUpdates = []string{
	`UPDATE machines SET category_id = (SELECT categories.id FROM categories WHERE categories.name = machines.category)`,
	`UPDATE machines SET series_id = (SELECT series.id FROM series WHERE series.name = machines.series)`,
	`UPDATE machines SET manufacturer_id = (SELECT manufacturers.id FROM manufacturers WHERE manufacturers.name = machines.normalized_manufacturer)`,
	`UPDATE machines SET subcategory_id = (SELECT subcategories.id FROM subcategories JOIN categories ON categories.id = subcategories.category_id WHERE subcategories.name = machines.subcategory AND categories.name = machines.category)`,
}

func resolveForeignKeys(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range foreignKeyUpdates {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to resolve foreign keys: %w", err)
			}
		}
		for _, table := range childTables {
			stmt := fmt.Sprintf("UPDATE %s SET machine_id = (SELECT machines.id FROM machines WHERE machines.name = %s.machine_name)", table, table)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to resolve %s.machine_id: %w", table, err)
			}
		}
		return nil
	})
}

type dimensionRow struct {
	ID   uint
	Name string
}

func dimensionIDs(db *gorm.DB, table string) (map[string]uint, error) {
	var rows []dimensionRow
	if err := db.Table(table).Select("id", "name").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	ids := make(map[string]uint, len(rows))
	for _, r := range rows {
		ids[r.Name] = r.ID
	}
	return ids, nil
}

type machineLists struct {
	ID                uint
	Languages         string
	NormalizedPlayers string
}

// writeJunctions splits the denormalized list columns back into link rows.
// Repeated values within one machine produce a single link.
func writeJunctions(db *gorm.DB) error {
	languageIDs, err := dimensionIDs(db, "languages")
	if err != nil {
		return err
	}
	playerIDs, err := dimensionIDs(db, "players")
	if err != nil {
		return err
	}

	var machines []machineLists
	if err := db.Table("machines").Select("id", "languages", "normalized_players").Scan(&machines).Error; err != nil {
		return fmt.Errorf("failed to load machine lists: %w", err)
	}

	var langLinks []MachineLanguage
	var playerLinks []MachinePlayer
	for _, m := range machines {
		for _, id := range linkIDs(m.Languages, languageIDs) {
			langLinks = append(langLinks, MachineLanguage{MachineID: m.ID, LanguageID: id})
		}
		for _, id := range linkIDs(m.NormalizedPlayers, playerIDs) {
			playerLinks = append(playerLinks, MachinePlayer{MachineID: m.ID, PlayerID: id})
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := insert(tx, langLinks); err != nil {
			return fmt.Errorf("failed to write machine_languages: %w", err)
		}
		if err := insert(tx, playerLinks); err != nil {
			return fmt.Errorf("failed to write machine_players: %w", err)
		}
		return nil
	})
}

func linkIDs(list string, ids map[string]uint) []uint {
	seen := make(map[uint]bool)
	var out []uint
	for _, token := range catalog.SplitList(list) {
		id, ok := ids[token]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
