package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the overview page data.
type DashboardHandler struct {
	Handler
	dashboard *service.DashboardService
}

func NewDashboardHandler(s *server.Server, dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:   NewHandler(s),
		dashboard: dashboard,
	}
}

// Revenue returns the twelve months of the revenue chart.
func (h *DashboardHandler) Revenue(c echo.Context, _ *model.EmptyRequest) ([]model.Revenue, error) {
	return h.dashboard.Revenue(c.Request().Context())
}

// LatestInvoices returns the five most recent invoices with formatted amounts.
func (h *DashboardHandler) LatestInvoices(c echo.Context, _ *model.EmptyRequest) ([]model.LatestInvoice, error) {
	return h.dashboard.LatestInvoices(c.Request().Context())
}

// CardData returns the summary card figures.
func (h *DashboardHandler) CardData(c echo.Context, _ *model.EmptyRequest) (*model.CardData, error) {
	return h.dashboard.CardData(c.Request().Context())
}
