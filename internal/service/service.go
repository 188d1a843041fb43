// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
)

// InvoiceStore is the invoice query layer as the services see it.
type InvoiceStore interface {
	Create(ctx context.Context, input model.CreateInvoiceInput) (*model.Invoice, error)
	FetchLatest(ctx context.Context) ([]model.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*model.CardData, error)
	FetchPages(ctx context.Context, query string, pageSize int) (*model.InvoicesPages, error)
	Search(ctx context.Context, query string, page, pageSize int) (*model.FilteredInvoices, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*model.InvoiceForm, error)
	Update(ctx context.Context, input model.UpdateInvoiceInput) (*model.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerStore interface {
	Create(ctx context.Context, input model.CreateCustomerInput) (*model.Customer, error)
	FetchAll(ctx context.Context) ([]model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RevenueStore interface {
	FetchAll(ctx context.Context) ([]model.Revenue, error)
}

type UserStore interface {
	Create(ctx context.Context, input model.CreateUserInput) (*model.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*model.User, error)
}

// WelcomeMailer queues the email sent after signup.
type WelcomeMailer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name string) error
}
