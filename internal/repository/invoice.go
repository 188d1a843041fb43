package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// LatestInvoicesLimit is the number of rows on the "latest invoices" card.
const LatestInvoicesLimit = 5

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// invoiceSearchFilter is shared by the table and the page count so both
// always agree on what matches. $1 is the ILIKE pattern.
const invoiceSearchFilter = `
	FROM
		invoices i
		JOIN customers c ON i.customer_id = c.id
	WHERE
		c.name ILIKE $1
		OR c.email ILIKE $1
		OR i.amount::text ILIKE $1
		OR i.date::text ILIKE $1
		OR i.status::text ILIKE $1
`

const invoiceColumns = `id, customer_id, amount, status::text, date`

type InvoiceRepository struct {
	repository
}

func scanInvoice(row pgx.Row) (*model.Invoice, error) {
	var inv model.Invoice
	if err := row.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserts an invoice and returns it with the stored amount. A
// conflicting id returns nil, nil.
func (r *InvoiceRepository) Create(ctx context.Context, input model.CreateInvoiceInput) (*model.Invoice, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	status := input.Status
	if status == "" {
		status = model.InvoiceStatusPending
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	stmt := `
		INSERT INTO
			invoices (id, customer_id, amount, status, date)
		VALUES
			($1, $2, $3, $4::text::invoice_status, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING
			` + invoiceColumns

	inv, err := scanInvoice(r.db.QueryRow(ctx, stmt, id, input.CustomerID, input.Amount, string(status), date))
	if errors.Is(err, pgx.ErrNoRows) {
		r.log(ctx).Debug().Str("invoice_id", id.String()).Msg("invoice already exists, insert skipped")
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to create invoice")
	}

	return inv, nil
}

// FetchLatest returns the five most recent invoices. The customer join is
// a LEFT JOIN, so an invoice without a customer keeps empty customer fields.
func (r *InvoiceRepository) FetchLatest(ctx context.Context) ([]model.LatestInvoice, error) {
	stmt := `
		SELECT
			i.id,
			COALESCE(c.name, ''),
			COALESCE(c.image_url, ''),
			COALESCE(c.email, ''),
			i.amount
		FROM
			invoices i
			LEFT JOIN customers c ON i.customer_id = c.id
		ORDER BY
			i.date DESC
		LIMIT
			$1
	`

	rows, err := r.db.Query(ctx, stmt, LatestInvoicesLimit)
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch the latest invoices")
	}

	latest, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.LatestInvoice, error) {
		var (
			inv    model.LatestInvoice
			amount int
		)
		err := row.Scan(&inv.ID, &inv.Name, &inv.ImageURL, &inv.Email, &amount)
		inv.Amount = strconv.Itoa(amount)
		return inv, err
	})
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch the latest invoices")
	}

	return latest, nil
}

// FetchCardData runs the three dashboard aggregates concurrently. The first
// failure cancels the others.
func (r *InvoiceRepository) FetchCardData(ctx context.Context) (*model.CardData, error) {
	var data model.CardData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.QueryRow(gctx, `SELECT COUNT(*) FROM invoices`).Scan(&data.NumberOfInvoices)
	})

	g.Go(func() error {
		return r.db.QueryRow(gctx, `SELECT COUNT(*) FROM customers`).Scan(&data.NumberOfCustomers)
	})

	g.Go(func() error {
		stmt := `
			SELECT
				COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
			FROM
				invoices
		`
		return r.db.QueryRow(gctx, stmt).Scan(&data.TotalPaidInvoices, &data.TotalPendingInvoices)
	})

	if err := g.Wait(); err != nil {
		return nil, r.fail(ctx, err, "failed to fetch card data")
	}

	return &data, nil
}

// FetchFiltered returns one page of invoices matching query, newest first.
// page < 1 is treated as 1 and pageSize <= 0 as DefaultPageSize.
func (r *InvoiceRepository) FetchFiltered(ctx context.Context, query string, page, pageSize int) ([]model.InvoiceTableRow, error) {
	page, pageSize = normalizePage(page, pageSize)

	table, err := r.fetchTable(ctx, searchPattern(query), pageSize, offset(page, pageSize))
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch filtered invoices")
	}

	return table, nil
}

// FetchPages counts the invoices matching query and derives the page count.
func (r *InvoiceRepository) FetchPages(ctx context.Context, query string, pageSize int) (*model.InvoicesPages, error) {
	_, pageSize = normalizePage(1, pageSize)

	total, err := r.countMatching(ctx, searchPattern(query))
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch invoice pages")
	}

	return &model.InvoicesPages{
		TotalPages: totalPages(total, pageSize),
		TotalItems: total,
		IsEmpty:    total == 0,
	}, nil
}

// Search returns a page of the invoices table together with its pagination
// state. The count and the page are queried concurrently.
func (r *InvoiceRepository) Search(ctx context.Context, query string, page, pageSize int) (*model.FilteredInvoices, error) {
	page, pageSize = normalizePage(page, pageSize)
	pattern := searchPattern(query)

	var (
		total int64
		table []model.InvoiceTableRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = r.countMatching(gctx, pattern)
		return err
	})

	g.Go(func() error {
		var err error
		table, err = r.fetchTable(gctx, pattern, pageSize, offset(page, pageSize))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, r.fail(ctx, err, "failed to fetch filtered invoices")
	}

	pages := totalPages(total, pageSize)
	current := clampPage(page, pages)

	// Past the last page: serve the last page so the table matches
	// current_page.
	if current != page && pages > 0 {
		var err error
		table, err = r.fetchTable(ctx, pattern, pageSize, offset(current, pageSize))
		if err != nil {
			return nil, r.fail(ctx, err, "failed to fetch filtered invoices")
		}
	}

	return &model.FilteredInvoices{
		Table:       table,
		CurrentPage: current,
		TotalPages:  pages,
		TotalItems:  total,
	}, nil
}

func (r *InvoiceRepository) countMatching(ctx context.Context, pattern string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) `+invoiceSearchFilter, pattern).Scan(&total)
	return total, err
}

func (r *InvoiceRepository) fetchTable(ctx context.Context, pattern string, limit, skip int) ([]model.InvoiceTableRow, error) {
	stmt := `
		SELECT
			i.id,
			i.customer_id,
			c.name,
			c.email,
			c.image_url,
			i.date,
			i.amount,
			i.status::text
	` + invoiceSearchFilter + `
		ORDER BY
			i.date DESC
		LIMIT
			$2
		OFFSET
			$3
	`

	rows, err := r.db.Query(ctx, stmt, pattern, limit, skip)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.InvoiceTableRow, error) {
		var (
			inv  model.InvoiceTableRow
			date time.Time
		)
		err := row.Scan(&inv.ID, &inv.CustomerID, &inv.Name, &inv.Email, &inv.ImageURL, &date, &inv.Amount, &inv.Status)
		inv.Date = date.UTC().Format(isoLayout)
		return inv, err
	})
}

// FetchByID returns the invoice with its amount converted to major units for
// the edit form, or nil, nil when it does not exist.
func (r *InvoiceRepository) FetchByID(ctx context.Context, id uuid.UUID) (*model.InvoiceForm, error) {
	stmt := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(r.db.QueryRow(ctx, stmt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch invoice")
	}

	return &model.InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     model.ToMajorUnits(inv.Amount),
		Status:     inv.Status,
		Date:       inv.Date,
	}, nil
}

// Update writes the non-nil fields of input and returns the updated row, or
// nil, nil when no invoice has that id. A missing id fails before any query
// runs.
func (r *InvoiceRepository) Update(ctx context.Context, input model.UpdateInvoiceInput) (*model.Invoice, error) {
	if input.ID == uuid.Nil {
		code := "INVOICE_ID_REQUIRED"
		err := errs.NewBadRequestError("Invoice ID is required", true, &code, nil, nil)
		return nil, r.fail(ctx, err, "failed to update invoice")
	}

	var status *string
	if input.Status != nil {
		s := string(*input.Status)
		status = &s
	}

	var date *time.Time
	if input.Date != nil {
		d := input.Date.UTC()
		date = &d
	}

	stmt := `
		UPDATE invoices
		SET
			customer_id = COALESCE($2, customer_id),
			amount = COALESCE($3, amount),
			status = COALESCE($4::text::invoice_status, status),
			date = COALESCE($5, date)
		WHERE
			id = $1
		RETURNING
			` + invoiceColumns

	inv, err := scanInvoice(r.db.QueryRow(ctx, stmt, input.ID, input.CustomerID, input.Amount, status, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to update invoice")
	}

	return inv, nil
}

// Delete removes the invoice. Deleting an id that does not exist is not an
// error.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return r.fail(ctx, err, "failed to delete invoice")
	}

	r.log(ctx).Debug().
		Str("invoice_id", id.String()).
		Int64("rows", tag.RowsAffected()).
		Msg("invoice deleted")

	return nil
}
