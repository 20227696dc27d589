// Package integrity provides operational health checks of the datastore.
//
// The reconciliation queries assume a fixed set of tables. These checks make a
// broken deployment visible before OpenRefine users run into empty results.
//
// # Checks Provided
//
//   - Datastore: Validates that metadata, identifiers and full_text_search exist
//     with the columns and types of the GORM models in core/database.
//   - Profile: Counts entities per catalog type and values per extend property
//     source, reporting entries the datastore has no data for.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/datastore : Runs the datastore check.
//   - GET /integrity/profile : Runs the profile check.
package integrity
