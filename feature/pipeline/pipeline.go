package pipeline

import (
	"time"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/filter"
	"arcade-catalog/core/normalize"
	"arcade-catalog/feature/sources"

	"go.uber.org/zap"
)

// Options controls one preparation run.
type Options struct {
	// Filters are applied after ingestion, in order. Empty skips filtering.
	Filters []filter.Kind
	// Filter gates the removals; see filter.Options.
	Filter filter.Options
	// SkipNormalize leaves derived values untouched.
	SkipNormalize bool
}

// Result summarizes a preparation run.
type Result struct {
	Ingest     *sources.Report `json:"ingest"`
	Plans      []*filter.Plan  `json:"plans,omitempty"`
	Removed    int             `json:"removed"`
	Normalized int             `json:"normalized"`
	Machines   int             `json:"machines"`
	Duration   time.Duration   `json:"duration"`
}

// Prepare ingests the sources, applies the filters, normalizes and rebuilds
// the indices. It is the shared front half of every command.
func Prepare(cat *catalog.Catalog, paths map[sources.Kind]string, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	report, err := sources.Ingest(cat, paths, logger)
	if err != nil {
		return nil, err
	}
	res := &Result{Ingest: report}

	for _, kind := range opts.Filters {
		plan, removed, err := filter.Run(cat, opts.Filter, kind)
		if err != nil {
			return nil, err
		}
		res.Plans = append(res.Plans, plan)
		res.Removed += removed
		logger.Info("Filter applied",
			zap.String("filter", string(kind)),
			zap.Int("matched", plan.Summary.Removals),
			zap.Int("removed", removed),
			zap.Bool("dry_run", opts.Filter.DryRun || !opts.Filter.Confirmed))
	}

	if !opts.SkipNormalize {
		res.Normalized = Normalize(cat)
		logger.Info("Normalization finished", zap.Int("machines", res.Normalized))
	}

	res.Machines = cat.Len()
	res.Duration = time.Since(start)
	return res, nil
}

// Normalize recomputes derived values for every machine and rebuilds the
// indices, since manufacturer and player keys come from derived values.
func Normalize(cat *catalog.Catalog) int {
	n := 0
	_ = cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
		n = normalize.Apply(s)
		ix.RebuildAll(s)
		return nil
	})
	return n
}
