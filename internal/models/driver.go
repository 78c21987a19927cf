package models

import "time"

type DriverStatus string

const (
	DriverActive  DriverStatus = "active"
	DriverIdle    DriverStatus = "idle"
	DriverOffline DriverStatus = "offline"
	DriverBreak   DriverStatus = "break"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverActive, DriverIdle, DriverOffline, DriverBreak:
		return true
	}
	return false
}

type Driver struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Avatar          string       `json:"avatar"`
	Phone           string       `json:"phone"`
	Status          DriverStatus `json:"status"`
	TruckID         string       `json:"truckId"`
	LastSync        time.Time    `json:"lastSync"`
	CurrentLocation *LatLng      `json:"currentLocation,omitempty"`
}
