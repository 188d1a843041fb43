package model

// Revenue is one month of the revenue chart. Month is a short label such
// as "Jan" and is unique.
type Revenue struct {
	Month   string `json:"month" validate:"required,max=4"`
	Revenue int    `json:"revenue" validate:"gte=0"`
}
