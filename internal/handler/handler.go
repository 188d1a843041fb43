// Package handler is the HTTP layer of the dashboard API.
//
// Handlers bind and validate the request through the validation package,
// call one service method and write the result. Errors are left to the
// global error handler.
package handler
