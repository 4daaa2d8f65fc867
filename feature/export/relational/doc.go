// Package relational exports the catalog into a SQL database through GORM.
//
// The schema is dropped and recreated on every export. Dimension tables
// (series, categories, subcategories, manufacturers, languages, players) are
// filled from the derived indices first. Machines and their child rows follow
// in transactions of Writer batch size machines. Foreign keys and the
// machine_languages and machine_players junctions are resolved afterwards
// from the denormalized columns.
package relational
