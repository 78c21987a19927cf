package models

import "time"

type ContainerStatus string

const (
	ContainerAtPort      ContainerStatus = "at_port"
	ContainerInTransit   ContainerStatus = "in_transit"
	ContainerAtWarehouse ContainerStatus = "at_warehouse"
	ContainerUnloaded    ContainerStatus = "unloaded"
)

// ImportContainer tracks an inbound ocean container against its free storage
// period. FreeDaysRemaining is signed: zero or below means demurrage is
// accruing at DemurragePerDay.
type ImportContainer struct {
	ID                string          `json:"id"`
	ContainerID       string          `json:"containerId"`
	ArrivalDate       time.Time       `json:"arrivalDate"`
	FreeDaysRemaining int             `json:"freeDaysRemaining"`
	DemurragePerDay   float64         `json:"demurragePerDay"`
	Status            ContainerStatus `json:"status"`
	Contents          string          `json:"contents"`
	TotalPallets      int             `json:"totalPallets"`
	UnloadedPallets   int             `json:"unloadedPallets"`
}
