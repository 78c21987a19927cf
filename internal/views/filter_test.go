package views

import (
	"testing"

	"logicore-tms-api-server/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSortExceptionsSeverityOrder(t *testing.T) {
	input := []models.Exception{
		{ID: "E1", Severity: models.SeverityLow},
		{ID: "E2", Severity: models.SeverityCritical},
		{ID: "E3", Severity: models.SeverityHigh},
		{ID: "E4", Severity: models.SeverityCritical},
	}

	sorted := SortExceptions(input)

	ids := make([]string, len(sorted))
	for i, e := range sorted {
		ids[i] = e.ID
	}
	// Stable: the two criticals keep their input order.
	require.Equal(t, []string{"E2", "E4", "E3", "E1"}, ids)

	// Input untouched.
	require.Equal(t, "E1", input[0].ID)
}

func TestSortExceptionsResolvedLast(t *testing.T) {
	input := []models.Exception{
		{ID: "E1", Severity: models.SeverityCritical, Resolved: true},
		{ID: "E2", Severity: models.SeverityLow},
		{ID: "E3", Severity: models.SeverityMedium, Resolved: true},
	}

	sorted := SortExceptions(input)

	require.Equal(t, "E2", sorted[0].ID)
	require.True(t, sorted[1].Resolved)
	require.True(t, sorted[2].Resolved)
	// Severity still orders within the resolved tail.
	require.Equal(t, "E1", sorted[1].ID)
}

func TestSortExceptionsUnknownSeverityLast(t *testing.T) {
	input := []models.Exception{
		{ID: "E1", Severity: models.Severity("catastrophic")},
		{ID: "E2", Severity: models.SeverityLow},
		{ID: "E3", Severity: models.SeverityCritical},
	}

	sorted := SortExceptions(input)

	// A severity outside the enumerated set sorts after low, never level
	// with critical.
	require.Equal(t, "E3", sorted[0].ID)
	require.Equal(t, "E2", sorted[1].ID)
	require.Equal(t, "E1", sorted[2].ID)
}

func TestUnresolved(t *testing.T) {
	input := []models.Exception{
		{ID: "E1", Resolved: true},
		{ID: "E2"},
		{ID: "E3"},
	}

	open := Unresolved(input)
	require.Len(t, open, 2)
	require.Equal(t, "E2", open[0].ID)
	require.Equal(t, "E3", open[1].ID)
}

func TestFilterOrdersSearchMatchesIDOrCustomer(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-78101", CustomerName: "Metro Grocers", Status: models.OrderUnplanned},
		{ID: "ORD-78102", CustomerName: "Sunrise Deli", Status: models.OrderInTransit},
		{ID: "ORD-99201", CustomerName: "Grocer Supply Co", Status: models.OrderDelivered},
	}

	// Query matching either field counts, case-insensitively.
	got, err := FilterOrders(orders, FilterAll, "grocer")
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = FilterOrders(orders, FilterAll, "78102")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Sunrise Deli", got[0].CustomerName)

	// Status and query combine.
	got, err = FilterOrders(orders, "unplanned", "grocer")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "ORD-78101", got[0].ID)
}

func TestFilterOrdersInvalidStatusFailsClosed(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-1", Status: models.OrderUnplanned},
	}

	got, err := FilterOrders(orders, "shipped", "")
	require.ErrorIs(t, err, ErrInvalidFilter)
	require.Nil(t, got)
}

func TestFilterOrdersEmptyQueryMatchesAll(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-1", Status: models.OrderUnplanned},
		{ID: "ORD-2", Status: models.OrderDelivered},
	}

	got, err := FilterOrders(orders, FilterAll, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestFilterDrivers(t *testing.T) {
	drivers := []models.Driver{
		{ID: "DRV001", Name: "Carlos Mendez", Status: models.DriverActive},
		{ID: "DRV002", Name: "Sarah Chen", Status: models.DriverIdle},
	}

	got, err := FilterDrivers(drivers, "active", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "DRV001", got[0].ID)

	got, err = FilterDrivers(drivers, FilterAll, "chen")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "DRV002", got[0].ID)

	_, err = FilterDrivers(drivers, "driving", "")
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilterTrucks(t *testing.T) {
	trucks := []models.Truck{
		{ID: "TRK001", Status: models.TruckMoving},
		{ID: "TRK002", Status: models.TruckMaintenance},
	}

	got, err := FilterTrucks(trucks, "maintenance")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "TRK002", got[0].ID)

	_, err = FilterTrucks(trucks, "parked")
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilterSettlements(t *testing.T) {
	settlements := []models.DriverSettlement{
		{ID: "SET001", DriverName: "Carlos Mendez", RouteID: "RTE001", Status: models.SettlementReconciled},
		{ID: "SET002", DriverName: "Sarah Chen", RouteID: "RTE002", Status: models.SettlementDiscrepancy},
		{ID: "SET003", DriverName: "Mike Torres", RouteID: "RTE003", Status: models.SettlementPending},
	}

	got, err := FilterSettlements(settlements, "discrepancy", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "SET002", got[0].ID)

	// Query matches driver name or route ID.
	got, err = FilterSettlements(settlements, FilterAll, "rte003")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "SET003", got[0].ID)

	_, err = FilterSettlements(settlements, "approved", "")
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestSortContainersMostUrgentFirst(t *testing.T) {
	input := []models.ImportContainer{
		{ID: "C1", FreeDaysRemaining: 5},
		{ID: "C2", FreeDaysRemaining: -2},
		{ID: "C3", FreeDaysRemaining: 0},
		{ID: "C4", FreeDaysRemaining: 0},
	}

	sorted := SortContainers(input)

	ids := make([]string, len(sorted))
	for i, c := range sorted {
		ids[i] = c.ID
	}
	// Ties keep input order (C3 before C4).
	require.Equal(t, []string{"C2", "C3", "C4", "C1"}, ids)
	require.Equal(t, "C1", input[0].ID)
}

func TestFilterRTIAssetsMatchesCustomerNameOnly(t *testing.T) {
	assets := []models.RTIAsset{
		{ID: "RTI001", CustomerName: "Metro Grocers"},
		{ID: "RTI002", CustomerName: "Sunrise Deli"},
	}

	got := FilterRTIAssets(assets, "metro")
	require.Len(t, got, 1)
	require.Equal(t, "RTI001", got[0].ID)

	// The asset ID is not searched.
	got = FilterRTIAssets(assets, "RTI002")
	require.Empty(t, got)
}
