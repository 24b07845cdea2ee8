// Package logger provides a structured logging facility based on Zap.
//
// New builds a development logger for the "debug" level and a production logger
// otherwise, encoded either as colored console lines or JSON.
//
// WithRayID attaches the request's RayID to a logger inside Fiber handlers so that
// every entry of one API request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Updating posts", zap.Time("reference_date", ref))
package logger
