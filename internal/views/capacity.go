package views

import "logicore-tms-api-server/internal/models"

// LoadCondition buckets a utilization percentage for styling and triage.
type LoadCondition string

const (
	LoadNormal       LoadCondition = "normal"
	LoadNearCapacity LoadCondition = "near_capacity"
	LoadOverCapacity LoadCondition = "over_capacity"
)

// CapacityUsage is the utilization of a truck's weight and volume by either
// its current load or a planned route.
type CapacityUsage struct {
	WeightPercent   float64       `json:"weightPercent"`
	VolumePercent   float64       `json:"volumePercent"`
	WeightCondition LoadCondition `json:"weightCondition"`
	VolumeCondition LoadCondition `json:"volumeCondition"`
	// CubedOut flags a volumetrically full but weight-light load, a signal
	// that the route is worth re-optimizing. Route-level only.
	CubedOut bool `json:"cubedOut"`
}

// Classify buckets a percentage: above 90 is over-capacity, 70 through 90 is
// near-capacity, anything below is normal. 90.0 exactly is near, not over.
func Classify(percent float64) LoadCondition {
	switch {
	case percent > 90:
		return LoadOverCapacity
	case percent >= 70:
		return LoadNearCapacity
	default:
		return LoadNormal
	}
}

// EvaluateRoute computes a planned route's utilization of its truck. The
// second return is false when either capacity axis is zero; utilization is
// then undefined and the caller renders "no data" instead of a percentage.
func EvaluateRoute(route models.Route, truck models.Truck) (CapacityUsage, bool) {
	usage, ok := evaluate(route.TotalWeight, route.TotalVolume, truck.Capacity)
	if !ok {
		return CapacityUsage{}, false
	}
	usage.CubedOut = usage.VolumePercent > 85 && usage.WeightPercent < 60
	return usage, true
}

// EvaluateTruckLoad computes a truck's utilization by what is on board now.
func EvaluateTruckLoad(truck models.Truck) (CapacityUsage, bool) {
	return evaluate(truck.CurrentLoad.Weight, truck.CurrentLoad.Volume, truck.Capacity)
}

func evaluate(weight, volume float64, capacity models.LoadSpec) (CapacityUsage, bool) {
	if capacity.Weight <= 0 || capacity.Volume <= 0 {
		return CapacityUsage{}, false
	}

	usage := CapacityUsage{
		WeightPercent: weight / capacity.Weight * 100,
		VolumePercent: volume / capacity.Volume * 100,
	}
	usage.WeightCondition = Classify(usage.WeightPercent)
	usage.VolumeCondition = Classify(usage.VolumePercent)
	return usage, true
}
