package seed

import (
	"fmt"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
)

// Users are the accounts that can sign in to a freshly seeded dashboard.
var Users = []model.CreateUserInput{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var Customers = []model.CreateCustomerInput{
	{
		ID:       uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"),
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"),
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"),
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"),
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"),
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

type invoiceRow struct {
	customer int
	amount   int
	status   model.InvoiceStatus
	date     string
}

// invoiceRows reference Customers by index; amounts are in cents.
var invoiceRows = []invoiceRow{
	{0, 15795, model.InvoiceStatusPending, "2022-12-06"},
	{1, 20348, model.InvoiceStatusPending, "2022-11-14"},
	{4, 3040, model.InvoiceStatusPaid, "2022-10-29"},
	{3, 44800, model.InvoiceStatusPaid, "2023-09-10"},
	{5, 34577, model.InvoiceStatusPending, "2023-08-05"},
	{2, 54246, model.InvoiceStatusPending, "2023-07-16"},
	{0, 666, model.InvoiceStatusPending, "2023-06-27"},
	{3, 32545, model.InvoiceStatusPaid, "2023-06-09"},
	{4, 1250, model.InvoiceStatusPaid, "2023-06-17"},
	{5, 8546, model.InvoiceStatusPaid, "2023-06-07"},
	{1, 500, model.InvoiceStatusPaid, "2023-08-19"},
	{5, 8945, model.InvoiceStatusPaid, "2023-06-03"},
	{2, 1000, model.InvoiceStatusPaid, "2022-06-05"},
}

// Invoices returns the placeholder invoices. IDs are derived from the row
// position so a second seed run hits the primary key and inserts nothing.
func Invoices() []model.CreateInvoiceInput {
	invoices := make([]model.CreateInvoiceInput, 0, len(invoiceRows))

	for i, row := range invoiceRows {
		date, err := time.Parse(time.DateOnly, row.date)
		if err != nil {
			panic(fmt.Sprintf("seed: invoice %d: %v", i, err))
		}

		invoices = append(invoices, model.CreateInvoiceInput{
			ID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("invoice-dashboard/seed/invoice/%d", i))),
			CustomerID: Customers[row.customer].ID,
			Amount:     row.amount,
			Status:     row.status,
			Date:       &date,
		})
	}

	return invoices
}

var Revenue = []model.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
