package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIPage is the docs page, relative to the working directory.
const OpenAPIPage = "static/openapi.html"

// OpenAPIHandler serves the API docs page. The page loads
// /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	page string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		page:    OpenAPIPage,
	}
}

// ServeOpenAPIUI reads the page on every request so edits show up without a
// restart; caching is disabled for the same reason.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(h.page)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
