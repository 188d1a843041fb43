package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
)

var (
	invoiceNotFoundCode = "INVOICE_NOT_FOUND"
	errInvoiceNotFound  = errs.NewNotFoundError("Invoice not found", true, &invoiceNotFoundCode)
)

type InvoiceService struct {
	invoices InvoiceStore
}

func NewInvoiceService(invoices InvoiceStore) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

// Search returns a page of the invoices table.
func (s *InvoiceService) Search(ctx context.Context, req *model.SearchInvoicesRequest) (*model.FilteredInvoices, error) {
	return s.invoices.Search(ctx, req.Query, req.Page, req.PageSize)
}

// Pages returns the page count for a search.
func (s *InvoiceService) Pages(ctx context.Context, req *model.InvoicePagesRequest) (*model.InvoicesPages, error) {
	return s.invoices.FetchPages(ctx, req.Query, req.PageSize)
}

// GetForm returns the invoice as the edit form shows it, amount in dollars.
func (s *InvoiceService) GetForm(ctx context.Context, id string) (*model.InvoiceForm, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	form, err := s.invoices.FetchByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errInvoiceNotFound
	}

	return form, nil
}

// Create stores a new invoice. The form amount is in dollars and is stored
// in cents, rounded to the nearest cent.
func (s *InvoiceService) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return nil, err
	}

	inv, err := s.invoices.Create(ctx, model.CreateInvoiceInput{
		CustomerID: customerID,
		Amount:     model.ToMinorUnits(req.Amount),
		Status:     model.InvoiceStatus(req.Status),
		Date:       req.Date,
	})
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, errs.NewConflictError("Invoice already exists", "INVOICE_ALREADY_EXISTS")
	}

	return inv, nil
}

// Update applies the supplied fields to an existing invoice.
func (s *InvoiceService) Update(ctx context.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error) {
	invoiceID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	input := model.UpdateInvoiceInput{ID: invoiceID, Date: req.Date}

	if req.CustomerID != nil {
		customerID, err := parseID(*req.CustomerID)
		if err != nil {
			return nil, err
		}
		input.CustomerID = &customerID
	}

	if req.Amount != nil {
		amount := model.ToMinorUnits(*req.Amount)
		input.Amount = &amount
	}

	if req.Status != nil {
		status := model.InvoiceStatus(*req.Status)
		input.Status = &status
	}

	inv, err := s.invoices.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, errInvoiceNotFound
	}

	return inv, nil
}

// Delete removes an invoice.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	invoiceID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.invoices.Delete(ctx, invoiceID)
}

// parseID turns an already validated UUID string into a uuid.UUID.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError(fmt.Sprintf("Invalid id %q", id), true, nil, nil, nil)
	}
	return parsed, nil
}
