// Package database handles datastore connections and schema inspection.
//
// It wraps GORM to open a read-only session pool on either PostgreSQL (the
// reference datastore, full-text search through tsvector segments) or MySQL
// (FULLTEXT index on the raw column).
//
// # Dialects
//
// Queries are written once in portable SQL; the handful of fragments that
// differ (full-text predicate, regular expression match, text cast, current
// schema) come from the Dialect of the open connection.
//
// # Schema Inspection
//
// GetTableColumns reads information_schema so the integrity feature can
// compare the live tables with the Models the service expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "metadata")
package database
