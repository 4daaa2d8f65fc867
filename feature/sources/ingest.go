package sources

import (
	"time"

	"arcade-catalog/core/catalog"

	"go.uber.org/zap"
)

// Report summarizes an ingestion run.
type Report struct {
	Results []Result        `json:"results"`
	Errors  map[Kind]string `json:"errors,omitempty"`
}

// Ingest reads every source into the catalog in Kinds order and rebuilds
// the derived indices. A failing auxiliary source is recorded in the report
// and the remaining sources still run. A failing MAME catalog aborts the
// run, since no other source can join without it.
func Ingest(cat *catalog.Catalog, paths map[Kind]string, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{Errors: make(map[Kind]string)}
	for _, kind := range Kinds {
		rd, err := NewReader(kind)
		if err != nil {
			return report, err
		}

		start := time.Now()
		var res Result
		err = cat.Exclusive(func(s *catalog.Store, _ *catalog.Indices) error {
			if kind == KindMAME {
				s.Clear()
			}
			var err error
			res, err = ReadFile(rd, paths[kind], s)
			return err
		})
		if err != nil {
			if kind == KindMAME {
				logger.Error("Failed to read MAME catalog", zap.String("path", paths[kind]), zap.Error(err))
				return report, err
			}
			logger.Warn("Skipping source", zap.String("source", string(kind)), zap.Error(err))
			report.Errors[kind] = err.Error()
			continue
		}

		report.Results = append(report.Results, res)
		logger.Info("Source loaded",
			zap.String("source", string(kind)),
			zap.String("path", paths[kind]),
			zap.Int("applied", res.Applied),
			zap.Int("skipped", res.Skipped),
			zap.Duration("duration", time.Since(start)),
		)
	}

	cat.Rebuild()
	return report, nil
}
