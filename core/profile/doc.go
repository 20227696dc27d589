// Package profile loads the ConfigProvider document: the schema property
// names, scoring parameters, and the type and property catalogs a
// reconciliation service exposes.
//
// The document is YAML and decoded strictly, so a misspelled key is an error
// rather than a silently ignored setting. It can be read from a local file or
// from the storage bucket (see Config.Object).
package profile
