package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	Handler
	invoices *service.InvoiceService
}

func NewInvoiceHandler(s *server.Server, invoices *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		Handler:  NewHandler(s),
		invoices: invoices,
	}
}

// Search serves one page of the invoices table filtered by ?query=.
func (h *InvoiceHandler) Search(c echo.Context, req *model.SearchInvoicesRequest) (*model.FilteredInvoices, error) {
	return h.invoices.Search(c.Request().Context(), req)
}

func (h *InvoiceHandler) Pages(c echo.Context, req *model.InvoicePagesRequest) (*model.InvoicesPages, error) {
	return h.invoices.Pages(c.Request().Context(), req)
}

// Get returns the invoice prefilled into the edit form.
func (h *InvoiceHandler) Get(c echo.Context, req *model.InvoiceIDRequest) (*model.InvoiceForm, error) {
	return h.invoices.GetForm(c.Request().Context(), req.ID)
}

func (h *InvoiceHandler) Create(c echo.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	return h.invoices.Create(c.Request().Context(), req)
}

func (h *InvoiceHandler) Update(c echo.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error) {
	return h.invoices.Update(c.Request().Context(), req)
}

func (h *InvoiceHandler) Delete(c echo.Context, req *model.InvoiceIDRequest) error {
	return h.invoices.Delete(c.Request().Context(), req.ID)
}
