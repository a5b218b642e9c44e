// Package middleware provides the inbound middleware for the robot API.
//
// Stack returns the chain in execution order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Recovery must stay outside Timeout, which re-raises handler panics, and
// Logging must stay outside Timeout to log a 504.
package middleware
