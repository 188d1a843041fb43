package router

import (
	"github.com/deppfellow/invoice-dashboard/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the public endpoints outside the API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and the docs page assets.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
