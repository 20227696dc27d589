// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a request id (RayID) to every incoming request and echoes
//     it in the X-Ray-ID response header for tracing.
//   - Cors: sets Access-Control-Allow-Origin to "*", a literal origin, or the
//     caller's own Origin in "__secure__" mode.
package middleware
