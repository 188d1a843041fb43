// Package model declares the records the dashboard stores and the
// shapes its queries return.
//
// Entities mirror the tables (users, customers, invoices, revenue).
// Query results get their own structs so the JSON handed to the UI
// never depends on how a row happens to be scanned.
package model
