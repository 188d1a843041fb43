// Package seed loads the placeholder dataset through the regular create
// operations. Running it twice is harmless: existing rows are skipped.
package seed

import (
	"context"
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/rs/zerolog"
)

type UserCreator interface {
	Create(ctx context.Context, input model.CreateUserInput) (*model.User, error)
}

type CustomerCreator interface {
	Create(ctx context.Context, input model.CreateCustomerInput) (*model.Customer, error)
}

type InvoiceCreator interface {
	Create(ctx context.Context, input model.CreateInvoiceInput) (*model.Invoice, error)
}

type RevenueCreator interface {
	Create(ctx context.Context, input model.Revenue) (*model.Revenue, error)
}

// Stores are the create operations the seed needs.
type Stores struct {
	Users     UserCreator
	Customers CustomerCreator
	Invoices  InvoiceCreator
	Revenue   RevenueCreator
}

// Count is the outcome for one table.
type Count struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Summary is printed by `dashboard seed --print`.
type Summary struct {
	Users     Count `json:"users"`
	Customers Count `json:"customers"`
	Invoices  Count `json:"invoices"`
	Revenue   Count `json:"revenue"`
}

// Run seeds users, customers, invoices and revenue in that order, since
// invoices reference customers. The first storage error stops the run.
func Run(ctx context.Context, stores Stores, logger *zerolog.Logger) (*Summary, error) {
	summary := &Summary{}

	for _, input := range Users {
		user, err := stores.Users.Create(ctx, input)
		if err != nil {
			return summary, fmt.Errorf("failed to seed user %s: %w", input.Email, err)
		}
		record(logger, &summary.Users, user != nil, "user", input.Email)
	}

	for _, input := range Customers {
		customer, err := stores.Customers.Create(ctx, input)
		if err != nil {
			return summary, fmt.Errorf("failed to seed customer %s: %w", input.Email, err)
		}
		record(logger, &summary.Customers, customer != nil, "customer", input.Email)
	}

	for _, input := range Invoices() {
		invoice, err := stores.Invoices.Create(ctx, input)
		if err != nil {
			return summary, fmt.Errorf("failed to seed invoice %s: %w", input.ID, err)
		}
		record(logger, &summary.Invoices, invoice != nil, "invoice", input.ID.String())
	}

	for _, input := range Revenue {
		revenue, err := stores.Revenue.Create(ctx, input)
		if err != nil {
			return summary, fmt.Errorf("failed to seed revenue %s: %w", input.Month, err)
		}
		record(logger, &summary.Revenue, revenue != nil, "revenue", input.Month)
	}

	logger.Info().
		Int("users", summary.Users.Created).
		Int("customers", summary.Customers.Created).
		Int("invoices", summary.Invoices.Created).
		Int("revenue", summary.Revenue.Created).
		Msg("seed completed")

	return summary, nil
}

func record(logger *zerolog.Logger, count *Count, created bool, kind, key string) {
	if created {
		count.Created++
		logger.Debug().Str("kind", kind).Str("key", key).Msg("seeded")
		return
	}

	count.Skipped++
	logger.Debug().Str("kind", kind).Str("key", key).Msg("already present, skipped")
}
