// Package sqlbuilder assembles SQL statements with a variable number of
// parameters (type filters, id lists, per-property unions) while keeping the
// generated text and its positional argument vector in step.
//
// Untrusted input only ever travels as an argument; the text is built from
// constants and placeholders.
//
//	q := sqlbuilder.New("SELECT id FROM metadata WHERE property = ? AND ", typeProp)
//	q.In("value", types)
//	sql, args, err := q.Build()
//	db.Raw(sql, args...).Scan(&rows)
package sqlbuilder
