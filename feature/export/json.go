package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// JSONExporter writes machines.json and one file per index into Dir.
// With Gzip set every file is compressed and gets a .gz suffix.
type JSONExporter struct {
	Dir  string
	Gzip bool
}

// Name returns the exporter name.
func (e *JSONExporter) Name() string { return "json" }

// Export writes the machine documents and index files of snap.
func (e *JSONExporter) Export(_ context.Context, snap *Snapshot) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create json directory: %w", err)
	}
	if err := e.writeFile("machines", snap.Machines); err != nil {
		return err
	}
	for _, fi := range flatIndexes {
		if err := e.writeFile(fi.file, snap.Indices.Get(fi.kind).Entries()); err != nil {
			return err
		}
	}
	return e.writeFile("subcategories", snap.Indices.Subcategories())
}

func (e *JSONExporter) writeFile(name string, v any) error {
	path := filepath.Join(e.Dir, name+".json")
	if e.Gzip {
		path += ".gz"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if e.Gzip {
		gz = gzip.NewWriter(f)
		w = gz
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
	}
	return f.Close()
}
