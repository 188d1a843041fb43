// Package errs defines the error shapes the dashboard API returns.
//
// Every failure that reaches a client is an *HTTPError: a machine
// readable code, a human readable message, the status, and optional
// field-level errors for the invoice and customer forms.
package errs
