package export

import "path/filepath"

// Config holds configuration for the exporters.
type Config struct {
	// OutputDir is where flat files are written.
	OutputDir string `mapstructure:"output_dir" default:"out"`
	// CSV enables the CSV exporter.
	CSV bool `mapstructure:"csv" default:"true"`
	// JSON enables the JSON exporter.
	JSON bool `mapstructure:"json" default:"true"`
	// Gzip compresses JSON output.
	Gzip bool `mapstructure:"gzip" default:"false"`
	// Relational enables the database exporter.
	Relational bool `mapstructure:"relational" default:"false"`
	// BatchSize is the number of machines written per transaction.
	BatchSize int `mapstructure:"batch_size" default:"5000"`
	// Publish uploads the output directory to object storage after exporting.
	Publish bool `mapstructure:"publish" default:"false"`
	// Workers bounds concurrent uploads.
	Workers int `mapstructure:"workers" default:"4"`
}

// FileExporters builds the enabled flat file exporters. CSV files go to
// OutputDir/csv and JSON files to OutputDir/json.
func (c Config) FileExporters() []Exporter {
	var out []Exporter
	if c.CSV {
		out = append(out, &CSVExporter{Dir: filepath.Join(c.OutputDir, "csv")})
	}
	if c.JSON {
		out = append(out, &JSONExporter{Dir: filepath.Join(c.OutputDir, "json"), Gzip: c.Gzip})
	}
	return out
}

// ExpectedFiles lists the files the enabled flat file exporters produce,
// relative to OutputDir and slash separated.
func (c Config) ExpectedFiles() []string {
	var out []string
	if c.CSV {
		for _, t := range tables {
			out = append(out, "csv/"+t.name+".csv")
		}
	}
	if c.JSON {
		ext := ".json"
		if c.Gzip {
			ext += ".gz"
		}
		out = append(out, "json/machines"+ext)
		for _, fi := range flatIndexes {
			out = append(out, "json/"+fi.file+ext)
		}
		out = append(out, "json/subcategories"+ext)
	}
	return out
}
