package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Customer owns zero or more invoices. Deleting one removes its invoices.
type Customer struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// CreateCustomerInput leaves ID as uuid.Nil to let the repository pick one.
type CreateCustomerInput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	ImageURL string `json:"image_url" validate:"required,max=255"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validator.New().Struct(r)
}

// DeleteCustomerRequest binds the :id path parameter.
type DeleteCustomerRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteCustomerRequest) Validate() error {
	return validator.New().Struct(r)
}
