package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/middleware"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name  string `json:"name" validate:"required"`
	Times int    `json:"times" validate:"omitempty,min=1"`
}

func (r *echoRequest) Validate() error {
	return validator.New().Struct(r)
}

type echoResponse struct {
	Message string `json:"message"`
}

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(testServer()).GlobalErrorHandler
	return e
}

func TestHandle_BindsFreshRequestEachCall(t *testing.T) {
	e := newTestEcho()

	var seen []*echoRequest
	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (*echoResponse, error) {
		seen = append(seen, req)
		return &echoResponse{Message: strings.Repeat(req.Name, max(req.Times, 1))}, nil
	}, http.StatusCreated))

	first := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"ab","times":2}`))
	first.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"abab"}`, rec.Body.String())

	second := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"c"}`))
	second.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, second)

	assert.JSONEq(t, `{"message":"c"}`, rec.Body.String())

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	assert.Equal(t, 0, seen[1].Times)
}

func TestHandle_ValidationError(t *testing.T) {
	e := newTestEcho()

	called := false
	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (*echoResponse, error) {
		called = true
		return nil, nil
	}, http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"name"`)
}

func TestHandle_HandlerError(t *testing.T) {
	e := newTestEcho()

	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errs.NewConflictError("Invoice already exists", "INVOICE_ALREADY_EXISTS")
	}, http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVOICE_ALREADY_EXISTS")
}

func TestHandleNoContent(t *testing.T) {
	e := newTestEcho()

	e.DELETE("/echo", HandleNoContent(func(c echo.Context, req *echoRequest) error {
		if req.Name == "boom" {
			return errors.New("failed to delete: boom")
		}
		return nil
	}, http.StatusNoContent))

	req := httptest.NewRequest(http.MethodDelete, "/echo", strings.NewReader(`{"name":"ok"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/echo", strings.NewReader(`{"name":"boom"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
