// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server composes them with chi in this order:
//
//	Recovery → RequestID → CorrelationID → Actor → OpenTelemetry → Logging → Timeout → Handler
package middleware
