package checks

import (
	"os"

	"arcade-catalog/feature/sources"
)

// SourceStatus describes one input file.
type SourceStatus struct {
	Source   sources.Kind `json:"source"`
	Path     string       `json:"path"`
	Found    bool         `json:"found"`
	Size     int64        `json:"size"`
	Required bool         `json:"required"`
}

// CheckSources reports, in ingestion order, whether every input file exists.
// Only the MAME catalog is required.
func CheckSources(paths map[sources.Kind]string) []SourceStatus {
	out := make([]SourceStatus, 0, len(sources.Kinds))
	for _, kind := range sources.Kinds {
		st := SourceStatus{Source: kind, Path: paths[kind], Required: kind == sources.KindMAME}
		if st.Path != "" {
			if info, err := os.Stat(st.Path); err == nil && !info.IsDir() {
				st.Found = true
				st.Size = info.Size()
			}
		}
		out = append(out, st)
	}
	return out
}

// SourcesReady reports whether every required source was found.
func SourcesReady(statuses []SourceStatus) bool {
	for _, st := range statuses {
		if st.Required && !st.Found {
			return false
		}
	}
	return true
}
