package models

type TruckType string

const (
	TruckBox          TruckType = "box"
	TruckRefrigerated TruckType = "refrigerated"
	TruckFlatbed      TruckType = "flatbed"
)

type TruckStatus string

const (
	TruckMoving      TruckStatus = "moving"
	TruckIdle        TruckStatus = "idle"
	TruckStopped     TruckStatus = "stopped"
	TruckMaintenance TruckStatus = "maintenance"
)

func (s TruckStatus) Valid() bool {
	switch s {
	case TruckMoving, TruckIdle, TruckStopped, TruckMaintenance:
		return true
	}
	return false
}

type Truck struct {
	ID          string      `json:"id"`
	PlateNumber string      `json:"plateNumber"`
	Type        TruckType   `json:"type"`
	Capacity    LoadSpec    `json:"capacity"`
	CurrentLoad LoadSpec    `json:"currentLoad"`
	Status      TruckStatus `json:"status"`
	// Temperature is reported for refrigerated trucks only.
	Temperature      *float64 `json:"temperature,omitempty"`
	TemperatureAlert bool     `json:"temperatureAlert,omitempty"`
}
