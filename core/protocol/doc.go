// Package protocol turns inbound HTTP requests into typed protocol requests.
//
// Every operation of the reconciliation API has its own Request type. The
// shared reconcile path is resolved here: no parameters means the manifest,
// an extend parameter means data extension, anything else is a query batch.
// Malformed batch and extension payloads fail with apierror.BadRequest before
// any handler runs.
package protocol
