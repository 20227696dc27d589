package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Dialect renders the few SQL fragments that differ between the supported
// datastores. Every fragment carries at most one positional placeholder.
type Dialect string

const (
	Postgres Dialect = DriverPostgres
	MySQL    Dialect = DriverMySQL
)

// DialectOf returns the dialect of an open connection. Unknown dialectors
// fall back to Postgres syntax.
func DialectOf(db *gorm.DB) Dialect {
	if db != nil && db.Dialector != nil && db.Dialector.Name() == DriverMySQL {
		return MySQL
	}
	return Postgres
}

// FullText is a natural-language match of the query placeholder against the
// full_text_search row aliased as alias.
func (d Dialect) FullText(alias string) string {
	if d == MySQL {
		return fmt.Sprintf("MATCH (%s.raw) AGAINST (? IN NATURAL LANGUAGE MODE)", alias)
	}
	return fmt.Sprintf("websearch_to_tsquery('simple', ?) @@ %s.segments", alias)
}

// Regexp matches column against the pattern placeholder.
func (d Dialect) Regexp(column string) string {
	if d == MySQL {
		return column + " REGEXP ?"
	}
	return column + " ~ ?"
}

// Text casts the placeholder to a string type.
func (d Dialect) Text() string {
	if d == MySQL {
		return "CAST(? AS CHAR)"
	}
	return "CAST(? AS TEXT)"
}

// CurrentSchema is the expression naming the schema tables are looked up in.
func (d Dialect) CurrentSchema() string {
	if d == MySQL {
		return "DATABASE()"
	}
	return "current_schema()"
}
