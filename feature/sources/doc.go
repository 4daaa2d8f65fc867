// Package sources reads the MAME catalog and its side files into a catalog
// store.
//
// # Readers
//
// Each format has one Reader:
//   - MAMEReader: the listxml catalog; the only reader that creates machines.
//   - CatverReader: category, subcategory and maturity.
//   - SeriesReader, LanguagesReader: "[Label]" sections of machine names.
//   - NPlayersReader: raw player-count strings.
//   - HistoryReader: history text split into ordered sections, copied to
//     every system listed by an entry.
//   - ResourcesReader: artwork files grouped by resource section.
//
// Every reader other than MAMEReader joins by machine name and skips records
// naming unknown machines. The returned Result counts applied and skipped
// records. Only an unreadable file or a broken container is an error,
// reported as a *SourceError.
//
// # Ingest
//
// Ingest runs all readers in order, keeps going when an auxiliary source
// fails, and rebuilds the derived indices at the end.
package sources
