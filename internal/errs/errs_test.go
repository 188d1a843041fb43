package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("not found"))
}

func TestHTTPError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("Failed to update invoice: %w", NewBadRequestError("Invoice ID is required", true, nil, nil, nil))

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.True(t, errors.Is(err, &HTTPError{}))
}

func TestHTTPError_WithMessageCopies(t *testing.T) {
	base := NewNotFoundError("Invoice not found", true, nil)
	changed := base.WithMessage("Customer not found")

	assert.Equal(t, "Invoice not found", base.Message)
	assert.Equal(t, "Customer not found", changed.Message)
	assert.Equal(t, base.Code, changed.Code)
}

func TestHTTPError_WithAction(t *testing.T) {
	action := &Action{Type: ActionTypeRedirect, Message: "back to invoices", Value: "/dashboard/invoices"}
	err := NewConflictError("Invoice already exists", "INVOICE_ALREADY_EXISTS").WithAction(action)

	assert.Equal(t, http.StatusConflict, err.Status)
	assert.Equal(t, action, err.Action)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError("Slow down")

	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
}
