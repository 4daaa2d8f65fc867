// Package publish mirrors an export directory into an object storage bucket.
//
// Files are uploaded concurrently with a bounded worker count. After a
// successful upload, objects under the configured prefix without a local
// counterpart are removed so the bucket always reflects the latest export.
package publish
