package integrity

import (
	"context"
	"fmt"

	"arcade-catalog/core/storage"
	"arcade-catalog/feature/integrity/checks"
	"arcade-catalog/feature/sources"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options wires the optional dependencies of the integrity checks.
type Options struct {
	// Sources are the resolved input file paths.
	Sources map[sources.Kind]string
	// DB is the relational export target; nil disables the schema check.
	DB *gorm.DB
	// Client is the publish target; nil disables the published check.
	Client storage.Client
	Bucket string
	Prefix string
	// Expected lists the files a complete export publishes.
	Expected []string
}

// Service handles integrity checks.
type Service struct {
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options, logger *zap.Logger) *Service {
	return &Service{opts: opts, logger: logger}
}

// CheckSources reports the state of every input file.
func (s *Service) CheckSources() []checks.SourceStatus {
	return checks.CheckSources(s.opts.Sources)
}

// CheckSchema compares the exported database with the relational models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.opts.DB == nil {
		return nil, fmt.Errorf("database is not configured")
	}
	return checks.CheckSchema(s.opts.DB)
}

// CheckPublished returns the expected export files missing from the bucket.
func (s *Service) CheckPublished(ctx context.Context) ([]string, error) {
	if s.opts.Client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckPublished(ctx, s.opts.Client, s.opts.Bucket, s.opts.Prefix, s.opts.Expected)
}
