package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVExporter writes one CSV file per table into Dir.
type CSVExporter struct {
	Dir string
}

// Name returns the exporter name.
func (e *CSVExporter) Name() string { return "csv" }

// Export writes every table of snap.
func (e *CSVExporter) Export(_ context.Context, snap *Snapshot) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create csv directory: %w", err)
	}
	for _, t := range tables {
		if err := writeCSV(filepath.Join(e.Dir, t.name+".csv"), t.header, t.rows(snap)); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
