package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/deppfellow/invoice-dashboard/internal/database"
	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to DASHBOARD_TEST_DATABASE_URL, migrates it and
// empties every table. Tests skip when the database is not available.
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()

	dbURL := os.Getenv("DASHBOARD_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("DASHBOARD_TEST_DATABASE_URL not set, skipping repository integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("Failed to ping test database: %v", err)
	}
	t.Cleanup(pool.Close)

	logger := zerolog.Nop()
	cfg := &config.Config{Database: config.DatabaseConfig{URL: dbURL}}
	require.NoError(t, database.Migrate(ctx, &logger, cfg))

	_, err = pool.Exec(ctx, `TRUNCATE users, customers, invoices, revenue CASCADE`)
	require.NoError(t, err)

	return New(pool, &logger)
}

func createCustomer(t *testing.T, repos *Repositories, name, email string) *model.Customer {
	t.Helper()

	customer, err := repos.Customers.Create(context.Background(), model.CreateCustomerInput{
		Name:     name,
		Email:    email,
		ImageURL: "/customers/" + name + ".png",
	})
	require.NoError(t, err)
	require.NotNil(t, customer)
	return customer
}

func createInvoice(t *testing.T, repos *Repositories, customerID uuid.UUID, amount int, status model.InvoiceStatus, date time.Time) *model.Invoice {
	t.Helper()

	inv, err := repos.Invoices.Create(context.Background(), model.CreateInvoiceInput{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       &date,
	})
	require.NoError(t, err)
	require.NotNil(t, inv)
	return inv
}

func TestUserRepository_CreateTwice(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	input := model.CreateUserInput{Name: "User", Email: "user@nextmail.com", Password: "123456"}

	first, err := repos.Users.Create(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEqual(t, "123456", first.Password)

	second, err := repos.Users.Create(ctx, input)
	require.NoError(t, err)
	assert.Nil(t, second, "duplicate email is skipped")

	stored, err := repos.Users.FetchByEmail(ctx, input.Email)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)
	assert.NotEqual(t, "123456", stored.Password)
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Users.Create(ctx, model.CreateUserInput{Name: "User", Email: "user@nextmail.com", Password: "123456"})
	require.NoError(t, err)

	user, err := repos.Users.VerifyPassword(ctx, "user@nextmail.com", "123456")
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = repos.Users.VerifyPassword(ctx, "user@nextmail.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repos.Users.VerifyPassword(ctx, "nobody@nextmail.com", "123456")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCustomerRepository_CreateConflict(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	createCustomer(t, repos, "Ada", "ada@x.com")

	dup, err := repos.Customers.Create(ctx, model.CreateCustomerInput{Name: "Ada 2", Email: "ada@x.com", ImageURL: "/a.png"})
	require.NoError(t, err)
	assert.Nil(t, dup)

	customers, err := repos.Customers.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestInvoiceRepository_CreateKeepsAmount(t *testing.T) {
	repos := setupTestDB(t)
	customer := createCustomer(t, repos, "Ada", "ada@x.com")

	for _, amount := range []int{1, 666, 12000, 2147483647} {
		inv := createInvoice(t, repos, customer.ID, amount, model.InvoiceStatusPending, time.Now())
		assert.Equal(t, amount, inv.Amount)
		assert.Equal(t, model.InvoiceStatusPending, inv.Status)
	}
}

func TestInvoiceRepository_CreateDefaults(t *testing.T) {
	repos := setupTestDB(t)
	customer := createCustomer(t, repos, "Ada", "ada@x.com")

	before := time.Now().Add(-time.Minute)
	inv, err := repos.Invoices.Create(context.Background(), model.CreateInvoiceInput{
		CustomerID: customer.ID,
		Amount:     500,
	})
	require.NoError(t, err)
	require.NotNil(t, inv)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, model.InvoiceStatusPending, inv.Status)
	assert.True(t, inv.Date.After(before))
}

func TestInvoiceRepository_CreateUnknownCustomer(t *testing.T) {
	repos := setupTestDB(t)

	_, err := repos.Invoices.Create(context.Background(), model.CreateInvoiceInput{
		CustomerID: uuid.New(),
		Amount:     100,
		Status:     model.InvoiceStatusPaid,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create invoice")
}

func TestInvoiceRepository_FetchByIDConvertsAmount(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	customer := createCustomer(t, repos, "Ada", "ada@x.com")

	inv := createInvoice(t, repos, customer.ID, 5000, model.InvoiceStatusPaid, time.Now())

	form, err := repos.Invoices.FetchByID(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, 50.0, form.Amount)
	assert.Equal(t, customer.ID, form.CustomerID)

	missing, err := repos.Invoices.FetchByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvoiceRepository_DeleteCustomerCascades(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	customer := createCustomer(t, repos, "Ada", "ada@x.com")
	inv := createInvoice(t, repos, customer.ID, 100, model.InvoiceStatusPending, time.Now())

	require.NoError(t, repos.Customers.Delete(ctx, customer.ID))

	form, err := repos.Invoices.FetchByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestInvoiceRepository_Delete(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	customer := createCustomer(t, repos, "Ada", "ada@x.com")
	inv := createInvoice(t, repos, customer.ID, 100, model.InvoiceStatusPending, time.Now())

	require.NoError(t, repos.Invoices.Delete(ctx, inv.ID))
	require.NoError(t, repos.Invoices.Delete(ctx, inv.ID), "deleting twice is not an error")

	form, err := repos.Invoices.FetchByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestInvoiceRepository_CardData(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	empty, err := repos.Invoices.FetchCardData(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.CardData{}, *empty)

	customer := createCustomer(t, repos, "Ada", "ada@x.com")
	createInvoice(t, repos, customer.ID, 12000, model.InvoiceStatusPaid, time.Now())
	createInvoice(t, repos, customer.ID, 300, model.InvoiceStatusPending, time.Now())

	data, err := repos.Invoices.FetchCardData(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, data.TotalPaidInvoices, int64(12000))
	assert.GreaterOrEqual(t, data.NumberOfInvoices, int64(1))
	assert.Equal(t, int64(2), data.NumberOfInvoices)
	assert.Equal(t, int64(1), data.NumberOfCustomers)
	assert.Equal(t, int64(300), data.TotalPendingInvoices)
}

func TestInvoiceRepository_FetchLatest(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	customer := createCustomer(t, repos, "Ada", "ada@x.com")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var newest *model.Invoice
	for i := range 7 {
		newest = createInvoice(t, repos, customer.ID, 1000+i, model.InvoiceStatusPaid, base.AddDate(0, 0, i))
	}

	latest, err := repos.Invoices.FetchLatest(ctx)
	require.NoError(t, err)
	require.Len(t, latest, LatestInvoicesLimit)

	assert.Equal(t, newest.ID, latest[0].ID)
	assert.Equal(t, "1006", latest[0].Amount)
	assert.Equal(t, "Ada", latest[0].Name)
	assert.Equal(t, "ada@x.com", latest[0].Email)
}

func TestInvoiceRepository_FetchFiltered(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	ada := createCustomer(t, repos, "Ada", "ada@x.com")
	lee := createCustomer(t, repos, "Lee Robinson", "lee@robinson.com")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 8 {
		createInvoice(t, repos, ada.ID, 100*(i+1), model.InvoiceStatusPending, base.AddDate(0, 0, -i))
	}
	createInvoice(t, repos, lee.ID, 4242, model.InvoiceStatusPaid, base.AddDate(0, 1, 0))

	rows, err := repos.Invoices.FetchFiltered(ctx, "", 1, 6)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.True(t, isSortedDesc(rows))
	assert.Equal(t, "2024-04-01T12:00:00.000Z", rows[0].Date)

	second, err := repos.Invoices.FetchFiltered(ctx, "", 2, 6)
	require.NoError(t, err)
	assert.Len(t, second, 3)

	byName, err := repos.Invoices.FetchFiltered(ctx, "ROBINSON", 1, 6)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, 4242, byName[0].Amount)
	assert.Equal(t, model.InvoiceStatusPaid, byName[0].Status)

	byAmount, err := repos.Invoices.FetchFiltered(ctx, "424", 1, 6)
	require.NoError(t, err)
	assert.Len(t, byAmount, 1)

	byStatus, err := repos.Invoices.FetchFiltered(ctx, "pend", 1, 20)
	require.NoError(t, err)
	assert.Len(t, byStatus, 8)

	byDate, err := repos.Invoices.FetchFiltered(ctx, "2024-04-01", 1, 6)
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	literal, err := repos.Invoices.FetchFiltered(ctx, "%", 1, 6)
	require.NoError(t, err)
	assert.Empty(t, literal)
}

func isSortedDesc(rows []model.InvoiceTableRow) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].Date > rows[i-1].Date {
			return false
		}
	}
	return true
}

func TestInvoiceRepository_FetchPages(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	none, err := repos.Invoices.FetchPages(ctx, "nothing matches this", 6)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicesPages{TotalPages: 0, TotalItems: 0, IsEmpty: true}, *none)

	customer := createCustomer(t, repos, "Ada", "ada@x.com")
	for i := range 7 {
		createInvoice(t, repos, customer.ID, 100+i, model.InvoiceStatusPaid, time.Now())
	}

	pages, err := repos.Invoices.FetchPages(ctx, "ada", 6)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicesPages{TotalPages: 2, TotalItems: 7, IsEmpty: false}, *pages)

	none, err = repos.Invoices.FetchPages(ctx, "nothing matches this", 6)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicesPages{TotalPages: 0, TotalItems: 0, IsEmpty: true}, *none)
}

func TestInvoiceRepository_Search(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	customer := createCustomer(t, repos, "Ada", "ada@x.com")
	for i := range 7 {
		createInvoice(t, repos, customer.ID, 100+i, model.InvoiceStatusPaid, time.Now().Add(-time.Duration(i)*time.Hour))
	}

	result, err := repos.Invoices.Search(ctx, "", 9, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, result.CurrentPage, "current page is clamped to the last page")
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, int64(7), result.TotalItems)
	require.Len(t, result.Table, 1, "the table holds the rows of the clamped page")
	assert.Equal(t, 106, result.Table[0].Amount)

	first, err := repos.Invoices.Search(ctx, "", 1, 6)
	require.NoError(t, err)
	assert.Len(t, first.Table, 6)
	assert.Equal(t, 1, first.CurrentPage)
}

func TestInvoiceRepository_Update(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	customer := createCustomer(t, repos, "Ada", "ada@x.com")
	other := createCustomer(t, repos, "Lee", "lee@x.com")
	inv := createInvoice(t, repos, customer.ID, 100, model.InvoiceStatusPending, time.Now())

	paid := model.InvoiceStatusPaid
	updated, err := repos.Invoices.Update(ctx, model.UpdateInvoiceInput{ID: inv.ID, Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, 100, updated.Amount, "fields that were not supplied keep their value")

	amount := 7500
	updated, err = repos.Invoices.Update(ctx, model.UpdateInvoiceInput{ID: inv.ID, Amount: &amount, CustomerID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, 7500, updated.Amount)
	assert.Equal(t, other.ID, updated.CustomerID)
	assert.Equal(t, model.InvoiceStatusPaid, updated.Status)

	missing, err := repos.Invoices.Update(ctx, model.UpdateInvoiceInput{ID: uuid.New(), Amount: &amount})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvoiceRepository_UpdateRequiresID(t *testing.T) {
	// Runs without a database: the id check happens before any query.
	logger := zerolog.Nop()
	repos := New(nil, &logger)

	_, err := repos.Invoices.Update(context.Background(), model.UpdateInvoiceInput{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Invoice ID is required", httpErr.Message)
	assert.Contains(t, err.Error(), "failed to update invoice")
}

func TestRevenueRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	months := []model.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}
	for _, m := range months {
		created, err := repos.Revenue.Create(ctx, m)
		require.NoError(t, err)
		assert.Equal(t, m, *created)
	}

	dup, err := repos.Revenue.Create(ctx, model.Revenue{Month: "Jan", Revenue: 1})
	require.NoError(t, err)
	assert.Nil(t, dup)

	all, err := repos.Revenue.FetchAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, months, all)
}
