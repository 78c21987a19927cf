package models

import "time"

type OrderStatus string

const (
	OrderUnplanned OrderStatus = "unplanned"
	OrderRouting   OrderStatus = "routing"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
	OrderException OrderStatus = "exception"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderUnplanned, OrderRouting, OrderInTransit, OrderDelivered, OrderException:
		return true
	}
	return false
}

// OrderType separates own-fleet ("route") deliveries from outside-carrier
// ("carrier") shipments. The hybrid volume split on the dashboard is derived
// from this field.
type OrderType string

const (
	OrderOwnFleet OrderType = "route"
	OrderCarrier  OrderType = "carrier"
)

type OrderPriority string

const (
	PriorityStandard OrderPriority = "standard"
	PriorityExpress  OrderPriority = "express"
	PriorityUrgent   OrderPriority = "urgent"
)

type Order struct {
	ID                   string        `json:"id"`
	CustomerID           string        `json:"customerId"`
	CustomerName         string        `json:"customerName"`
	Status               OrderStatus   `json:"status"`
	Type                 OrderType     `json:"type"`
	EstimatedWeight      float64       `json:"estimatedWeight"`
	ActualWeight         *float64      `json:"actualWeight,omitempty"`
	VolumeCubicFt        float64       `json:"volumeCubicFt"`
	RequiredDeliveryDate time.Time     `json:"requiredDeliveryDate"`
	DeliveryWindow       TimeWindow    `json:"deliveryWindow"`
	Address              string        `json:"address"`
	City                 string        `json:"city"`
	Priority             OrderPriority `json:"priority"`
	CreditHold           bool          `json:"creditHold,omitempty"`
	AssignedRouteID      string        `json:"assignedRouteId,omitempty"`
	CarrierTrackingID    string        `json:"carrierTrackingId,omitempty"`
}
