package views

import (
	"testing"

	"logicore-tms-api-server/internal/models"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    LoadCondition
	}{
		{0, LoadNormal},
		{69.9, LoadNormal},
		{70, LoadNearCapacity},
		{85, LoadNearCapacity},
		{90, LoadNearCapacity},
		{90.1, LoadOverCapacity},
		{120, LoadOverCapacity},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.percent), "percent %v", tt.percent)
	}
}

func TestEvaluateTruckLoad(t *testing.T) {
	truck := models.Truck{
		Capacity:    models.LoadSpec{Weight: 10000, Volume: 1200},
		CurrentLoad: models.LoadSpec{Weight: 9200, Volume: 1150},
	}

	usage, ok := EvaluateTruckLoad(truck)
	require.True(t, ok)
	require.InDelta(t, 92.0, usage.WeightPercent, 0.001)
	require.InDelta(t, 95.833, usage.VolumePercent, 0.001)
	require.Equal(t, LoadOverCapacity, usage.WeightCondition)
	require.Equal(t, LoadOverCapacity, usage.VolumeCondition)
	require.False(t, usage.CubedOut)
}

func TestEvaluateTruckLoadZeroCapacityUndefined(t *testing.T) {
	truck := models.Truck{
		Capacity:    models.LoadSpec{Weight: 0, Volume: 1200},
		CurrentLoad: models.LoadSpec{Weight: 500, Volume: 100},
	}

	_, ok := EvaluateTruckLoad(truck)
	require.False(t, ok)
}

func TestEvaluateRouteCubedOut(t *testing.T) {
	truck := models.Truck{Capacity: models.LoadSpec{Weight: 10000, Volume: 1000}}

	// Volumetrically full but weight-light.
	route := models.Route{TotalWeight: 4000, TotalVolume: 900}
	usage, ok := EvaluateRoute(route, truck)
	require.True(t, ok)
	require.True(t, usage.CubedOut)
	require.Equal(t, LoadNormal, usage.WeightCondition)
	require.Equal(t, LoadOverCapacity, usage.VolumeCondition)

	// Heavy loads are never cubed out, however full the volume.
	route = models.Route{TotalWeight: 9500, TotalVolume: 950}
	usage, ok = EvaluateRoute(route, truck)
	require.True(t, ok)
	require.False(t, usage.CubedOut)

	// Boundary: exactly 85% volume is not cubed out.
	route = models.Route{TotalWeight: 4000, TotalVolume: 850}
	usage, ok = EvaluateRoute(route, truck)
	require.True(t, ok)
	require.False(t, usage.CubedOut)
}

func TestEvaluateRouteZeroCapacityUndefined(t *testing.T) {
	truck := models.Truck{Capacity: models.LoadSpec{Weight: 10000, Volume: 0}}
	route := models.Route{TotalWeight: 4000, TotalVolume: 900}

	usage, ok := EvaluateRoute(route, truck)
	require.False(t, ok)
	require.Zero(t, usage)
}
