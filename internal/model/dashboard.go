package model

// CardData feeds the four summary cards. Totals are in minor units.
type CardData struct {
	NumberOfInvoices     int64 `json:"number_of_invoices"`
	NumberOfCustomers    int64 `json:"number_of_customers"`
	TotalPaidInvoices    int64 `json:"total_paid_invoices"`
	TotalPendingInvoices int64 `json:"total_pending_invoices"`
}

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}
