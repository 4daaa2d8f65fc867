package checks

import (
	"context"
	"fmt"

	"arcade-catalog/core/storage"
	"arcade-catalog/feature/publish"

	"github.com/minio/minio-go/v7"
)

// CheckPublished returns the expected export files that are missing from
// the bucket. expected holds paths relative to the export directory.
func CheckPublished(ctx context.Context, client storage.Client, bucket, prefix string, expected []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	opts := minio.ListObjectsOptions{Recursive: true}
	if prefix != "" {
		opts.Prefix = prefix + "/"
	}

	present := make(map[string]bool)
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		present[obj.Key] = true
	}

	missing := []string{}
	for _, rel := range expected {
		if !present[publish.ObjectName(prefix, rel)] {
			missing = append(missing, rel)
		}
	}
	return missing, nil
}
