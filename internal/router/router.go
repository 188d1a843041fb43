// Package router builds the echo instance: global middleware, system routes
// and the versioned API.
package router

import (
	"net/http"

	"github.com/deppfellow/invoice-dashboard/internal/handler"
	"github.com/deppfellow/invoice-dashboard/internal/middleware"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

// NewRouter registers the middleware chain and every route. The order
// matters: the request id must exist before the context logger is built,
// the New Relic transaction before the tracing attributes, and the rate
// limiter runs inside the request logger so rejections are logged.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services.Users)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerV1Routes(v1, h, middlewares.Auth)

	return router
}

// registerV1Routes maps the dashboard actions. Signup is public, everything
// else sits behind Basic auth.
func registerV1Routes(v1 *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	v1.POST("/users", handler.Handle(h.User.Signup, http.StatusCreated))

	dashboard := v1.Group("/dashboard", auth.RequireAuth)
	dashboard.GET("/revenue", handler.Handle(h.Dashboard.Revenue, http.StatusOK))
	dashboard.GET("/latest-invoices", handler.Handle(h.Dashboard.LatestInvoices, http.StatusOK))
	dashboard.GET("/cards", handler.Handle(h.Dashboard.CardData, http.StatusOK))

	invoices := v1.Group("/invoices", auth.RequireAuth)
	invoices.GET("", handler.Handle(h.Invoice.Search, http.StatusOK))
	invoices.GET("/pages", handler.Handle(h.Invoice.Pages, http.StatusOK))
	invoices.GET("/:id", handler.Handle(h.Invoice.Get, http.StatusOK))
	invoices.POST("", handler.Handle(h.Invoice.Create, http.StatusCreated))
	invoices.PUT("/:id", handler.Handle(h.Invoice.Update, http.StatusOK))
	invoices.DELETE("/:id", handler.HandleNoContent(h.Invoice.Delete, http.StatusNoContent))

	customers := v1.Group("/customers", auth.RequireAuth)
	customers.GET("", handler.Handle(h.Customer.List, http.StatusOK))
	customers.POST("", handler.Handle(h.Customer.Create, http.StatusCreated))
	customers.DELETE("/:id", handler.HandleNoContent(h.Customer.Delete, http.StatusNoContent))
}
