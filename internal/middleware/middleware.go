// Package middleware holds the echo middleware of the dashboard API: request
// ids, the request-scoped logger, Basic auth against the users table, rate
// limiting, New Relic tracing and the global error handler.
package middleware
