package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync/atomic"

	"arcade-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report summarizes one publish run.
type Report struct {
	Bucket   string   `json:"bucket"`
	Uploaded []string `json:"uploaded"`
	Removed  []string `json:"removed"`
	Bytes    int64    `json:"bytes"`
}

// Publisher uploads an export directory to object storage.
type Publisher struct {
	client  storage.Client
	bucket  string
	region  string
	prefix  string
	workers int
	logger  *zap.Logger
}

// NewPublisher creates a publisher. workers bounds concurrent uploads.
func NewPublisher(client storage.Client, cfg storage.Config, workers int, logger *zap.Logger) *Publisher {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client:  client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		prefix:  cfg.Prefix,
		workers: workers,
		logger:  logger,
	}
}

// ObjectName maps a slash separated path relative to the export directory
// to its object key.
func ObjectName(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

// Publish uploads every file under dir and removes objects under the prefix
// that no longer have a local counterpart.
func (p *Publisher) Publish(ctx context.Context, dir string) (*Report, error) {
	files, err := listFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("nothing to publish in %s", dir)
	}

	if err := storage.EnsureBucket(ctx, p.client, p.bucket, p.region); err != nil {
		return nil, err
	}

	report := &Report{Bucket: p.bucket}
	var written atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, rel := range files {
		g.Go(func() error {
			n, err := p.upload(gctx, dir, rel)
			if err != nil {
				return err
			}
			written.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Bytes = written.Load()

	keep := make(map[string]bool, len(files))
	for _, rel := range files {
		name := ObjectName(p.prefix, rel)
		keep[name] = true
		report.Uploaded = append(report.Uploaded, name)
	}

	removed, err := p.prune(ctx, keep)
	if err != nil {
		return nil, err
	}
	report.Removed = removed

	p.logger.Info("Export published",
		zap.String("bucket", p.bucket),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("removed", len(report.Removed)),
		zap.Int64("bytes", report.Bytes))
	return report, nil
}

func (p *Publisher) upload(ctx context.Context, dir, rel string) (int64, error) {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", rel, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", rel, err)
	}

	opts := minio.PutObjectOptions{ContentType: contentType(rel)}
	name := ObjectName(p.prefix, rel)
	if _, err := p.client.PutObject(ctx, p.bucket, name, f, info.Size(), opts); err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	p.logger.Debug("Uploaded object", zap.String("object", name), zap.Int64("size", info.Size()))
	return info.Size(), nil
}

func (p *Publisher) prune(ctx context.Context, keep map[string]bool) ([]string, error) {
	opts := minio.ListObjectsOptions{Recursive: true}
	if p.prefix != "" {
		opts.Prefix = p.prefix + "/"
	}

	var stale []minio.ObjectInfo
	for obj := range p.client.ListObjects(ctx, p.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list published objects: %w", obj.Err)
		}
		if !keep[obj.Key] {
			stale = append(stale, obj)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	removed := make([]string, 0, len(stale))
	for _, obj := range stale {
		objectsCh <- obj
		removed = append(removed, obj.Key)
	}
	close(objectsCh)

	for rmErr := range p.client.RemoveObjects(ctx, p.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", rmErr.ObjectName, rmErr.Err)
		}
	}
	return removed, nil
}

func listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

var contentTypes = map[string]string{
	".csv":  "text/csv; charset=utf-8",
	".json": "application/json",
	".gz":   "application/gzip",
}

func contentType(name string) string {
	if ct, ok := contentTypes[path.Ext(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}
