package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/model"
)

// DashboardService serves the overview page: revenue chart, latest invoices
// and the summary cards.
type DashboardService struct {
	invoices InvoiceStore
	revenue  RevenueStore
}

func NewDashboardService(invoices InvoiceStore, revenue RevenueStore) *DashboardService {
	return &DashboardService{invoices: invoices, revenue: revenue}
}

func (s *DashboardService) Revenue(ctx context.Context) ([]model.Revenue, error) {
	return s.revenue.FetchAll(ctx)
}

func (s *DashboardService) LatestInvoices(ctx context.Context) ([]model.LatestInvoice, error) {
	return s.invoices.FetchLatest(ctx)
}

func (s *DashboardService) CardData(ctx context.Context) (*model.CardData, error) {
	return s.invoices.FetchCardData(ctx)
}
