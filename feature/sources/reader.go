package sources

import (
	"errors"
	"fmt"
	"io"
	"os"

	"arcade-catalog/core/catalog"
)

// Kind names a source file format.
type Kind string

const (
	KindMAME      Kind = "mame"
	KindCatver    Kind = "catver"
	KindSeries    Kind = "series"
	KindLanguages Kind = "languages"
	KindNPlayers  Kind = "nplayers"
	KindHistory   Kind = "history"
	KindResources Kind = "resources"
)

// Kinds lists every source in ingestion order. The MAME catalog comes first
// because it is the only source that creates machines.
var Kinds = []Kind{KindMAME, KindCatver, KindSeries, KindLanguages, KindNPlayers, KindHistory, KindResources}

// Result counts the records of one source that were joined into the store
// and the ones skipped because they were malformed or named an unknown
// machine.
type Result struct {
	Source  Kind `json:"source"`
	Applied int  `json:"applied"`
	Skipped int  `json:"skipped"`
}

// Reader joins one source format into a store.
type Reader interface {
	// Kind returns the source format handled by the reader.
	Kind() Kind
	// Read parses r and merges its records into s. Malformed records are
	// skipped; only an unreadable stream or a broken container fails.
	Read(r io.Reader, s *catalog.Store) (Result, error)
}

// SourceError reports a source that could not be read at all.
type SourceError struct {
	Source Kind
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to read %s source %s: %v", e.Source, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a missing source file.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// ReadFile opens path and runs the reader on it. Every failure is returned
// as a *SourceError.
func ReadFile(rd Reader, path string, s *catalog.Store) (Result, error) {
	res := Result{Source: rd.Kind()}
	if path == "" {
		return res, &SourceError{Source: rd.Kind(), Path: path, Err: os.ErrNotExist}
	}

	f, err := os.Open(path)
	if err != nil {
		return res, &SourceError{Source: rd.Kind(), Path: path, Err: err}
	}
	defer f.Close()

	res, err = rd.Read(f, s)
	res.Source = rd.Kind()
	if err != nil {
		return res, &SourceError{Source: rd.Kind(), Path: path, Err: err}
	}
	return res, nil
}

// NewReader returns the reader for a source kind.
func NewReader(kind Kind) (Reader, error) {
	switch kind {
	case KindMAME:
		return MAMEReader{}, nil
	case KindCatver:
		return CatverReader{}, nil
	case KindSeries:
		return SeriesReader{}, nil
	case KindLanguages:
		return LanguagesReader{}, nil
	case KindNPlayers:
		return NPlayersReader{}, nil
	case KindHistory:
		return HistoryReader{}, nil
	case KindResources:
		return ResourcesReader{}, nil
	default:
		return nil, fmt.Errorf("unknown source: %s", kind)
	}
}
