// Package logger provides a structured logging facility based on Zap.
//
// The "debug" level selects Zap's development configuration (ISO8601
// timestamps, caller info); every other level uses the production preset.
// Format picks json or console encoding.
//
// # Request correlation
//
// WithRayID reads the request id stored by the rayid middleware and attaches
// it as the ray_id field, so every line logged for a reconcile batch or a
// suggest call can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Match query failed", zap.Error(err))
package logger
