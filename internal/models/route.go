package models

import "time"

type RouteStatus string

const (
	RoutePlanning   RouteStatus = "planning"
	RouteDispatched RouteStatus = "dispatched"
	RouteInProgress RouteStatus = "in_progress"
	RouteCompleted  RouteStatus = "completed"
)

type StopStatus string

const (
	StopPending   StopStatus = "pending"
	StopArrived   StopStatus = "arrived"
	StopCompleted StopStatus = "completed"
	StopSkipped   StopStatus = "skipped"
)

// RouteStop is one delivery on a route. Sequence is the 1-based position and
// defines display order within the route.
type RouteStop struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	CustomerName    string     `json:"customerName"`
	Address         string     `json:"address"`
	PlannedArrival  time.Time  `json:"plannedArrival"`
	ActualArrival   *time.Time `json:"actualArrival,omitempty"`
	TimeWindowStart string     `json:"timeWindowStart"`
	TimeWindowEnd   string     `json:"timeWindowEnd"`
	Status          StopStatus `json:"status"`
	Sequence        int        `json:"sequence"`
}

type Route struct {
	ID               string      `json:"id"`
	DriverID         string      `json:"driverId"`
	TruckID          string      `json:"truckId"`
	Status           RouteStatus `json:"status"`
	Stops            []RouteStop `json:"stops"`
	PlannedDeparture time.Time   `json:"plannedDeparture"`
	EstimatedReturn  time.Time   `json:"estimatedReturn"`
	TotalMiles       float64     `json:"totalMiles"`
	TotalWeight      float64     `json:"totalWeight"`
	TotalVolume      float64     `json:"totalVolume"`
}
