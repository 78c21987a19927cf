package models

import "time"

type RTIType string

const (
	RTIPallet RTIType = "pallet"
	RTICrate  RTIType = "crate"
	RTIDolly  RTIType = "dolly"
)

// RTIAsset is one customer's ledger line for a returnable transport item
// kind. Balance = QuantityOut - QuantityReturned and is expected to stay >= 0.
type RTIAsset struct {
	ID               string    `json:"id"`
	Type             RTIType   `json:"type"`
	CustomerID       string    `json:"customerId"`
	CustomerName     string    `json:"customerName"`
	QuantityOut      int       `json:"quantityOut"`
	QuantityReturned int       `json:"quantityReturned"`
	Balance          int       `json:"balance"`
	LastActivity     time.Time `json:"lastActivity"`
}
