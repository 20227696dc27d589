// Package reconcile implements the matching and typeahead engines of the
// reconciliation service.
//
// # Matching
//
// FindMatches retrieves every full-text index segment matching the query text
// on an entity of one of the requested types. Each segment becomes a Feature
// keyed by the property it was indexed from. A verbatim hit is worth 1.0 and
// any other hit the profile's partial match coefficient. The candidate score
// is the weighted sum of its features:
//
//	score = Σ feature.value × weight(feature.id)
//
// Candidates are sorted by descending score (stable, so ties keep retrieval
// order) and truncated to the query limit. Entities without a name are never
// returned.
//
// # Suggestions
//
// SuggestEntities unions identifier-prefix and name-prefix hits, orders them
// by localized name and pages through them with an offset.
//
// # Localization
//
// Every name and description passes through Localize, which applies the
// profile's preferred language order and falls back deterministically.
//
// # Queries
//
// All SQL is assembled with sqlbuilder.Part so the placeholder list and the
// argument vector never drift apart; the few dialect-specific fragments come
// from database.Dialect.
package reconcile
