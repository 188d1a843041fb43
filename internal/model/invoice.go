package model

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvoiceStatus is the invoice_status enum.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether s is one of the two enum values.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is a stored invoice. Amount is in minor units (cents).
type Invoice struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Amount     int           `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// InvoiceForm is an invoice prepared for the edit form: Amount is in major
// units (dollars).
type InvoiceForm struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// LatestInvoice is a row of the "latest invoices" card. Customer fields are
// empty strings when the customer row is gone.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   string    `json:"amount"`
}

// InvoiceTableRow is a row of the searchable invoices table. Date is an
// ISO-8601 string.
type InvoiceTableRow struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       string        `json:"date"`
	Amount     int           `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// InvoicesPages describes how many pages a search produces.
type InvoicesPages struct {
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	IsEmpty    bool  `json:"is_empty"`
}

// FilteredInvoices is one page of a search plus its pagination state.
// CurrentPage is clamped into [1, max(TotalPages, 1)].
type FilteredInvoices struct {
	Table       []InvoiceTableRow `json:"table"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
	TotalItems  int64             `json:"total_items"`
}

// CreateInvoiceInput is an insert in minor units. A zero ID or nil Date is
// filled in by the repository.
type CreateInvoiceInput struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int
	Status     InvoiceStatus
	Date       *time.Time
}

// UpdateInvoiceInput changes only the non-nil fields of invoice ID.
type UpdateInvoiceInput struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Amount     *int
	Status     *InvoiceStatus
	Date       *time.Time
}

// MaxAmount is the largest form amount in dollars whose cents still fit the
// INTEGER amount column.
const MaxAmount = 21474836.47

// MaxPage bounds the ?page= query parameter.
const MaxPage = 100000

// ToMinorUnits converts a form amount (dollars) into stored cents.
func ToMinorUnits(amount float64) int {
	return int(math.Round(amount * 100))
}

// ToMajorUnits converts stored cents into a form amount (dollars).
func ToMajorUnits(amount int) float64 {
	return float64(amount) / 100
}

// ------------------------------------------------------------

// CreateInvoiceRequest is the body of POST /api/v1/invoices. Amount is in
// dollars.
type CreateInvoiceRequest struct {
	CustomerID string     `json:"customer_id" validate:"required,uuid"`
	Amount     float64    `json:"amount" validate:"gt=0,lte=21474836.47"`
	Status     string     `json:"status" validate:"required,oneof=pending paid"`
	Date       *time.Time `json:"date"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateInvoiceRequest is the body of PUT /api/v1/invoices/:id.
type UpdateInvoiceRequest struct {
	ID         string     `param:"id" validate:"required,uuid"`
	CustomerID *string    `json:"customer_id" validate:"omitempty,uuid"`
	Amount     *float64   `json:"amount" validate:"omitempty,gt=0,lte=21474836.47"`
	Status     *string    `json:"status" validate:"omitempty,oneof=pending paid"`
	Date       *time.Time `json:"date"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	return validator.New().Struct(r)
}

// InvoiceIDRequest binds the :id path parameter of the single-invoice routes.
type InvoiceIDRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *InvoiceIDRequest) Validate() error {
	return validator.New().Struct(r)
}

// SearchInvoicesRequest is the query string of GET /api/v1/invoices.
type SearchInvoicesRequest struct {
	Query    string `query:"query" validate:"max=255"`
	Page     int    `query:"page" validate:"omitempty,min=1,max=100000"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

func (r *SearchInvoicesRequest) Validate() error {
	return validator.New().Struct(r)
}

// InvoicePagesRequest is the query string of GET /api/v1/invoices/pages.
type InvoicePagesRequest struct {
	Query    string `query:"query" validate:"max=255"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

func (r *InvoicePagesRequest) Validate() error {
	return validator.New().Struct(r)
}
