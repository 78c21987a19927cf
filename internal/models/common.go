package models

// LatLng is a plain WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LoadSpec describes a weight/volume pair, used both for truck capacity and
// for the load currently on board. Weight is in lbs, volume in cubic feet.
type LoadSpec struct {
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
}

// TimeWindow is a delivery window expressed as HH:MM wall-clock strings.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
