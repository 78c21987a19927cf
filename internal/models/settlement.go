package models

import "time"

type SettlementStatus string

const (
	SettlementPending     SettlementStatus = "pending"
	SettlementReconciled  SettlementStatus = "reconciled"
	SettlementDiscrepancy SettlementStatus = "discrepancy"
)

func (s SettlementStatus) Valid() bool {
	switch s {
	case SettlementPending, SettlementReconciled, SettlementDiscrepancy:
		return true
	}
	return false
}

// DriverSettlement reconciles the cash and checks a driver turned in at end of
// route against what the completed deliveries should have collected.
// Variance = (actualCash + actualCheck) - (expectedCash + expectedCheck).
// ProofImages holds object keys for scanned checks / deposit slips.
type DriverSettlement struct {
	ID            string           `json:"id"`
	DriverID      string           `json:"driverId"`
	DriverName    string           `json:"driverName"`
	RouteID       string           `json:"routeId"`
	Date          time.Time        `json:"date"`
	ExpectedCash  float64          `json:"expectedCash"`
	ExpectedCheck float64          `json:"expectedCheck"`
	ActualCash    float64          `json:"actualCash"`
	ActualCheck   float64          `json:"actualCheck"`
	Variance      float64          `json:"variance"`
	Status        SettlementStatus `json:"status"`
	ProofImages   []string         `json:"proofImages"`
}
