package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/model"
)

type CustomerService struct {
	customers CustomerStore
}

func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.customers.FetchAll(ctx)
}

// Create adds a customer; a taken email is reported as a conflict.
func (s *CustomerService) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	customer, err := s.customers.Create(ctx, model.CreateCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errs.NewConflictError("A customer with this email already exists", "CUSTOMER_ALREADY_EXISTS")
	}

	return customer, nil
}

// Delete removes a customer together with all of its invoices.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	customerID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.customers.Delete(ctx, customerID)
}
