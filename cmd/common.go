package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/config"
	"arcade-catalog/core/filter"
	"arcade-catalog/core/logger"
	"arcade-catalog/feature/pipeline"
	"arcade-catalog/feature/sources"

	"go.uber.org/zap"
)

// session bundles what every command needs after startup.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	paths  map[sources.Kind]string
}

func bootstrap() (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := cfg.Sources.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to locate sources: %w", err)
	}

	return &session{cfg: cfg, logger: l, paths: paths}, nil
}

// filterKinds resolves the --filters flag, falling back to the configured
// pipeline. "none" disables filtering.
func (a *session) filterKinds(flag string) ([]filter.Kind, error) {
	if flag == "none" {
		return nil, nil
	}
	if flag == "" {
		return a.cfg.Filter.Parsed()
	}
	return filter.ParseKinds(strings.Split(flag, ","))
}

// load ingests and normalizes the catalog without removing anything.
func (a *session) load() (*catalog.Catalog, error) {
	cat := catalog.New()
	if _, err := pipeline.Prepare(cat, a.paths, pipeline.Options{}, a.logger); err != nil {
		return nil, err
	}
	return cat, nil
}

// confirmDestructiveAction prompts the user for confirmation unless yes is set.
func confirmDestructiveAction(in io.Reader, out io.Writer, yes bool) bool {
	if yes {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\n⚠️  Type 'yes' to confirm removals: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
