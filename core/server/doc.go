// Package server holds the HTTP server configuration and constants.
//
// Besides the listening port it carries the protocol switches of the
// reconciliation API:
//
//   - APIVariant: "basic" serves manifest, reconcile, suggest and preview;
//     "extended" adds data extension and property proposal.
//   - ManifestTrigger: which request parameters count when deciding between
//     manifest and batch on the reconcile path ("query" or "query_and_body").
//     Empty follows the variant.
//   - Cors: "*" or "__secure__" (echo the caller's origin with Vary: Origin).
//   - Debug: full error dumps in error responses.
package server
