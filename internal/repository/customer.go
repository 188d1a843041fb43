package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	repository
}

// Create inserts a customer. Both the id and the email are unique; hitting
// either returns nil, nil.
func (r *CustomerRepository) Create(ctx context.Context, input model.CreateCustomerInput) (*model.Customer, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	stmt := `
		INSERT INTO
			customers (id, name, email, image_url)
		VALUES
			($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
		RETURNING
			id, name, email, image_url
	`

	var customer model.Customer
	err := r.db.QueryRow(ctx, stmt, id, input.Name, input.Email, input.ImageURL).
		Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		r.log(ctx).Debug().Str("email", input.Email).Msg("customer already exists, insert skipped")
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to create customer")
	}

	return &customer, nil
}

// FetchAll lists customers by name for the invoice form picker.
func (r *CustomerRepository) FetchAll(ctx context.Context) ([]model.Customer, error) {
	stmt := `
		SELECT
			id, name, email, image_url
		FROM
			customers
		ORDER BY
			name ASC
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch customers")
	}

	customers, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Customer])
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch customers")
	}

	return customers, nil
}

// Delete removes the customer; its invoices go with it (ON DELETE CASCADE).
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return r.fail(ctx, err, "failed to delete customer")
	}
	return nil
}
