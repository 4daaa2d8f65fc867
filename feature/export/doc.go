// Package export writes the catalog to flat files.
//
// Every exporter works on a Snapshot taken under the catalog lock: machines
// sorted by name plus the derived indices. A snapshot is refused when the
// catalog is empty or when normalization has not run yet.
//
// CSVExporter writes one file per table, child tables keyed by machine name.
// JSONExporter writes one pretty printed document per machine and one file
// per index, optionally gzip compressed. The relational exporter lives in the
// relational subpackage and satisfies the same Exporter interface.
package export
