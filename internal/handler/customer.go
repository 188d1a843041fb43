package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

// List feeds the customer select of the invoice forms.
func (h *CustomerHandler) List(c echo.Context, _ *model.EmptyRequest) ([]model.Customer, error) {
	return h.customers.List(c.Request().Context())
}

func (h *CustomerHandler) Create(c echo.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	return h.customers.Create(c.Request().Context(), req)
}

// Delete removes the customer and, through the foreign key, its invoices.
func (h *CustomerHandler) Delete(c echo.Context, req *model.DeleteCustomerRequest) error {
	return h.customers.Delete(c.Request().Context(), req.ID)
}
