package sources

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
)

// filePatterns match the file names the source archives unpack to.
var filePatterns = map[Kind]*regexp.Regexp{
	KindMAME:      regexp.MustCompile(`MAME\s+[0-9]*\.[0-9]+\.dat`),
	KindCatver:    regexp.MustCompile(`catver\.ini`),
	KindSeries:    regexp.MustCompile(`series\.ini`),
	KindLanguages: regexp.MustCompile(`languages\.ini`),
	KindNPlayers:  regexp.MustCompile(`nplayers\.ini`),
	KindHistory:   regexp.MustCompile(`history\.xml`),
	KindResources: regexp.MustCompile(`^pS_AllProject_\d{8}_\d+_\([a-zA-Z]+\)\.dat$`),
}

// Locate walks dir and returns the first file (in lexical walk order)
// matching each source pattern. Sources without a match are absent from the
// result.
func Locate(dir string) (map[Kind]string, error) {
	found := make(map[Kind]string, len(Kinds))
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, kind := range Kinds {
			if _, done := found[kind]; done {
				continue
			}
			if filePatterns[kind].MatchString(d.Name()) {
				found[kind] = path
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan data directory %s: %w", dir, err)
	}
	return found, nil
}
