// Package integrity provides health checks for the catalog pipeline.
//
// # Checks Provided
//
//   - Sources: Reports which input files were located. Only the MAME catalog is required.
//   - Schema: Validates that the export database schema matches the relational models (columns, types).
//   - Published: Verifies that every export file is present in the storage bucket.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/sources : Runs the source file check.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/published : Runs the published export check.
package integrity
