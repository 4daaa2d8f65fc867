package export

import (
	"context"
	"time"

	"arcade-catalog/core/catalog"

	"go.uber.org/zap"
)

// Exporter writes a catalog snapshot to one output format.
type Exporter interface {
	Name() string
	Export(ctx context.Context, snap *Snapshot) error
}

// Result records the outcome of one exporter.
type Result struct {
	Exporter string        `json:"exporter"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// Run executes each exporter under exclusive access to the catalog.
// Exporters are independent: a failure is recorded and the next one runs.
func Run(ctx context.Context, cat *catalog.Catalog, exporters []Exporter, logger *zap.Logger) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(exporters))
	for _, e := range exporters {
		start := time.Now()
		err := cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
			snap, err := NewSnapshot(s, ix)
			if err != nil {
				return err
			}
			return e.Export(ctx, snap)
		})
		res := Result{Exporter: e.Name(), Duration: time.Since(start), Err: err}
		results = append(results, res)

		if err != nil {
			logger.Error("Export failed", zap.String("exporter", e.Name()), zap.Error(err))
			continue
		}
		logger.Info("Export finished", zap.String("exporter", e.Name()), zap.Duration("duration", res.Duration))
	}
	return results
}

// Failed reports whether any exporter failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
