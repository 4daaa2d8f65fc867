// Package pipeline runs the shared front half of every command: ingest the
// sources, filter, normalize and rebuild the derived indices.
package pipeline
