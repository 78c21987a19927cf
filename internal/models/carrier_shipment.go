package models

import "time"

type ShipmentStatus string

const (
	ShipmentLabelCreated ShipmentStatus = "label_created"
	ShipmentPickedUp     ShipmentStatus = "picked_up"
	ShipmentInTransit    ShipmentStatus = "in_transit"
	ShipmentDelivered    ShipmentStatus = "delivered"
)

// CarrierShipment is an order handed to an outside carrier (FedEx, UPS, LTL).
type CarrierShipment struct {
	ID                string         `json:"id"`
	Carrier           string         `json:"carrier"`
	TrackingNumber    string         `json:"trackingNumber"`
	OrderID           string         `json:"orderId"`
	Status            ShipmentStatus `json:"status"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	Cost              float64        `json:"cost"`
}
