package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/jackc/pgx/v5"
)

type RevenueRepository struct {
	repository
}

// Create inserts one month of revenue; an existing month returns nil, nil.
func (r *RevenueRepository) Create(ctx context.Context, input model.Revenue) (*model.Revenue, error) {
	stmt := `
		INSERT INTO
			revenue (month, revenue)
		VALUES
			($1, $2)
		ON CONFLICT (month) DO NOTHING
		RETURNING
			month, revenue
	`

	var rev model.Revenue
	err := r.db.QueryRow(ctx, stmt, input.Month, input.Revenue).Scan(&rev.Month, &rev.Revenue)
	if errors.Is(err, pgx.ErrNoRows) {
		r.log(ctx).Debug().Str("month", input.Month).Msg("revenue month already exists, insert skipped")
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to create revenue")
	}

	return &rev, nil
}

// FetchAll returns every revenue row in table order.
func (r *RevenueRepository) FetchAll(ctx context.Context) ([]model.Revenue, error) {
	rows, err := r.db.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch revenue data")
	}

	revenue, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Revenue])
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch revenue data")
	}

	return revenue, nil
}
