// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens sqlite, MySQL or PostgreSQL connections based on
// the application's configuration.
//
// # Connect
//
// Connect picks a dialector from Config.Driver, pings the database within
// Config.TimeoutSeconds and tunes the connection pool. sqlite connections are
// limited to a single open connection so in-memory databases survive between
// statements.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table in a driver independent shape.
// The relational schema check compares them against the exported models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "machines")
package database
