// Package apierror defines the failure taxonomy of the reconciliation API.
//
// Handlers return *Error values (or any other error, treated as internal).
// The fiber ErrorHandler built by Handler turns them into a status code and a
// plain text body, so a response is always either wholly successful or wholly
// an error.
//
// # Kinds
//
//   - KindBadRequest (400): malformed batch or data extension payload.
//   - KindNotFound (404): unknown path, unsupported suggest type, unimplemented operation.
//   - KindInternal (500): everything else, including datastore faults.
//
// # Debug mode
//
// With debug enabled the body is a go-spew dump of the error chain rather than
// its message.
package apierror
