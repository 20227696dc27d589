// Package reconciliation serves the reconcile, properties and preview
// endpoints of the OpenRefine reconciliation API.
//
// # The reconcile path
//
// GET or POST {base}/reconcile does one of three things:
//   - no parameters: returns the manifest
//   - extend=<json>: data extension (extended API variant only)
//   - queries=<json>: runs each match query and returns {id: {result: [...]}}
//
// Whether form body parameters count towards "no parameters" depends on the
// configured manifest trigger.
//
// # API variants
//
// The basic variant serves neither data extension nor /properties and leaves
// the extend section out of the manifest.
package reconciliation
