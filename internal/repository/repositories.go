// Package repository is the query layer of the dashboard.
//
// It holds the raw SQL for users, customers, invoices and revenue and
// returns the result structs declared in the model package. Failures
// are logged and returned wrapped, so the original *pgconn.PgError
// stays reachable with errors.As.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DBTX is the part of *pgxpool.Pool the repositories use. A pgx.Tx
// satisfies it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Users     *UserRepository
	Customers *CustomerRepository
	Invoices  *InvoiceRepository
	Revenue   *RevenueRepository
}

// NewRepositories builds the repositories on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool, s.Logger)
}

// New builds the repositories from an explicit handle. Commands that do not
// start the HTTP server (seed) use it directly.
func New(db DBTX, logger *zerolog.Logger) *Repositories {
	base := repository{db: db, logger: logger}

	return &Repositories{
		Users:     &UserRepository{repository: base},
		Customers: &CustomerRepository{repository: base},
		Invoices:  &InvoiceRepository{repository: base},
		Revenue:   &RevenueRepository{repository: base},
	}
}

// repository is embedded by every concrete repository.
type repository struct {
	db     DBTX
	logger *zerolog.Logger
}

// log prefers the request-scoped logger carried by ctx.
func (r repository) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if r.logger != nil {
		return r.logger
	}
	nop := zerolog.Nop()
	return &nop
}

// fail logs err and wraps it with a readable message.
func (r repository) fail(ctx context.Context, err error, message string) error {
	r.log(ctx).Error().Err(err).Msg(message)
	return fmt.Errorf("%s: %w", message, err)
}
