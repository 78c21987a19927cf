package store

import (
	"fmt"
	"time"

	"logicore-tms-api-server/internal/auth"
	"logicore-tms-api-server/internal/models"

	"github.com/sirupsen/logrus"
)

// SeedDemo builds the demo snapshot the dashboard runs on. Every timestamp is
// an offset from the supplied clock so relative-age labels and the demurrage
// clock behave the same on every boot. The data is deterministic on purpose:
// the aggregate numbers it produces are asserted in tests.
func SeedDemo(now time.Time) (*Snapshot, error) {
	snap := &Snapshot{}

	snap.Drivers = seedDrivers(now)
	snap.Trucks = seedTrucks()
	snap.Customers = seedCustomers()
	snap.Orders = seedOrders(now, snap.Customers)
	snap.Routes = seedRoutes(now)
	snap.Containers = seedContainers(now)
	snap.CarrierShipments = seedCarrierShipments(now)
	snap.Settlements = seedSettlements(now)
	snap.Exceptions = seedExceptions(now)
	snap.RTIAssets = seedRTIAssets(now)

	users, err := seedUsers()
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	snap.Users = users

	snap.index()

	logrus.WithFields(logrus.Fields{
		"orders":      len(snap.Orders),
		"drivers":     len(snap.Drivers),
		"routes":      len(snap.Routes),
		"settlements": len(snap.Settlements),
	}).Info("demo snapshot seeded")

	return snap, nil
}

func seedDrivers(now time.Time) []models.Driver {
	loc := func(lat, lng float64) *models.LatLng { return &models.LatLng{Lat: lat, Lng: lng} }
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	return []models.Driver{
		{ID: "DRV001", Name: "John Martinez", Avatar: "JM", Phone: "(555) 123-4567", Status: models.DriverActive, TruckID: "TRK001", LastSync: ago(2 * time.Minute), CurrentLocation: loc(40.7128, -74.0060)},
		{ID: "DRV002", Name: "Sarah Chen", Avatar: "SC", Phone: "(555) 234-5678", Status: models.DriverActive, TruckID: "TRK002", LastSync: ago(1 * time.Minute), CurrentLocation: loc(40.7580, -73.9855)},
		{ID: "DRV003", Name: "Mike Thompson", Avatar: "MT", Phone: "(555) 345-6789", Status: models.DriverIdle, TruckID: "TRK003", LastSync: ago(5 * time.Minute), CurrentLocation: loc(40.6892, -74.0445)},
		{ID: "DRV004", Name: "Emily Davis", Avatar: "ED", Phone: "(555) 456-7890", Status: models.DriverActive, TruckID: "TRK004", LastSync: ago(3 * time.Minute), CurrentLocation: loc(40.7484, -73.9857)},
		{ID: "DRV005", Name: "Carlos Rodriguez", Avatar: "CR", Phone: "(555) 567-8901", Status: models.DriverBreak, TruckID: "TRK005", LastSync: ago(15 * time.Minute)},
		{ID: "DRV006", Name: "Lisa Wang", Avatar: "LW", Phone: "(555) 678-9012", Status: models.DriverActive, TruckID: "TRK006", LastSync: ago(45 * time.Second), CurrentLocation: loc(40.7614, -73.9776)},
		{ID: "DRV007", Name: "James Wilson", Avatar: "JW", Phone: "(555) 789-0123", Status: models.DriverOffline, TruckID: "TRK007", LastSync: ago(4 * time.Hour)},
		{ID: "DRV008", Name: "Ana Gonzalez", Avatar: "AG", Phone: "(555) 890-1234", Status: models.DriverActive, TruckID: "TRK008", LastSync: ago(90 * time.Second), CurrentLocation: loc(40.7282, -73.7949)},
		{ID: "DRV009", Name: "David Kim", Avatar: "DK", Phone: "(555) 901-2345", Status: models.DriverIdle, TruckID: "TRK009", LastSync: ago(10 * time.Minute)},
		{ID: "DRV010", Name: "Rachel Brown", Avatar: "RB", Phone: "(555) 012-3456", Status: models.DriverActive, TruckID: "TRK010", LastSync: ago(30 * time.Second), CurrentLocation: loc(40.7831, -73.9712)},
	}
}

func seedTrucks() []models.Truck {
	temp := func(f float64) *float64 { return &f }

	return []models.Truck{
		{ID: "TRK001", PlateNumber: "ABC-1234", Type: models.TruckBox, Capacity: models.LoadSpec{Weight: 10000, Volume: 1200}, CurrentLoad: models.LoadSpec{Weight: 7500, Volume: 950}, Status: models.TruckMoving},
		{ID: "TRK002", PlateNumber: "DEF-5678", Type: models.TruckRefrigerated, Capacity: models.LoadSpec{Weight: 8000, Volume: 1000}, CurrentLoad: models.LoadSpec{Weight: 6200, Volume: 800}, Status: models.TruckMoving, Temperature: temp(34)},
		{ID: "TRK003", PlateNumber: "GHI-9012", Type: models.TruckBox, Capacity: models.LoadSpec{Weight: 12000, Volume: 1400}, CurrentLoad: models.LoadSpec{Weight: 4000, Volume: 1350}, Status: models.TruckIdle},
		{ID: "TRK004", PlateNumber: "JKL-3456", Type: models.TruckRefrigerated, Capacity: models.LoadSpec{Weight: 8000, Volume: 1000}, CurrentLoad: models.LoadSpec{Weight: 7800, Volume: 650}, Status: models.TruckMoving, Temperature: temp(42), TemperatureAlert: true},
		{ID: "TRK005", PlateNumber: "MNO-7890", Type: models.TruckFlatbed, Capacity: models.LoadSpec{Weight: 15000, Volume: 800}, CurrentLoad: models.LoadSpec{}, Status: models.TruckStopped},
		{ID: "TRK006", PlateNumber: "PQR-1357", Type: models.TruckBox, Capacity: models.LoadSpec{Weight: 10000, Volume: 1200}, CurrentLoad: models.LoadSpec{Weight: 8500, Volume: 1100}, Status: models.TruckMoving},
		{ID: "TRK007", PlateNumber: "STU-2468", Type: models.TruckBox, Capacity: models.LoadSpec{Weight: 10000, Volume: 1200}, CurrentLoad: models.LoadSpec{}, Status: models.TruckMaintenance},
		{ID: "TRK008", PlateNumber: "VWX-3691", Type: models.TruckRefrigerated, Capacity: models.LoadSpec{Weight: 8000, Volume: 1000}, CurrentLoad: models.LoadSpec{Weight: 5500, Volume: 700}, Status: models.TruckMoving, Temperature: temp(36)},
		{ID: "TRK009", PlateNumber: "YZA-4820", Type: models.TruckBox, Capacity: models.LoadSpec{Weight: 12000, Volume: 1400}, CurrentLoad: models.LoadSpec{Weight: 2000, Volume: 400}, Status: models.TruckIdle},
		{ID: "TRK010", PlateNumber: "BCD-5931", Type: models.TruckBox, Capacity: models.LoadSpec{Weight: 10000, Volume: 1200}, CurrentLoad: models.LoadSpec{Weight: 9200, Volume: 1150}, Status: models.TruckMoving},
	}
}

var customerNames = []string{
	"Metro Foods Inc", "Harbor Distributors", "Valley Fresh Market", "City Grocers",
	"Prime Wholesale", "Central Supply Co", "Eastern Imports", "Pacific Trading",
	"Summit Foods", "Golden Gate Dist.",
}

var customerCities = []string{"New York", "Brooklyn", "Queens", "Bronx", "Jersey City"}

func seedCustomers() []models.Customer {
	creditLimits := []float64{50000, 75000, 100000, 25000, 150000}

	customers := make([]models.Customer, 0, len(customerNames))
	for i, name := range customerNames {
		customers = append(customers, models.Customer{
			ID:             fmt.Sprintf("CUS%03d", i+1),
			Name:           name,
			Address:        fmt.Sprintf("%d Commerce Street", 100+i*50),
			City:           customerCities[i%len(customerCities)],
			CreditLimit:    creditLimits[i%len(creditLimits)],
			CurrentBalance: float64((i * 7919) % 40000),
			RTIBalance: models.RTIBalance{
				Pallets: (i * 13) % 30,
				Crates:  (i * 29) % 50,
			},
			DeliveryCost:     float64(35 + (i*11)%40),
			LastOrderRevenue: float64(200 + (i*97)%500),
		})
	}
	return customers
}

func seedOrders(now time.Time, customers []models.Customer) []models.Order {
	today := now
	tomorrow := now.AddDate(0, 0, 1)
	weight := func(f float64) *float64 { return &f }

	orders := []models.Order{
		// Unplanned
		{ID: "ORD-78341", CustomerID: "CUS001", CustomerName: "Metro Foods Inc", Status: models.OrderUnplanned, Type: models.OrderOwnFleet, EstimatedWeight: 1250, VolumeCubicFt: 145, RequiredDeliveryDate: tomorrow, DeliveryWindow: models.TimeWindow{Start: "08:00", End: "12:00"}, Address: "150 Commerce Street", City: "New York", Priority: models.PriorityStandard},
		{ID: "ORD-78342", CustomerID: "CUS002", CustomerName: "Harbor Distributors", Status: models.OrderUnplanned, Type: models.OrderOwnFleet, EstimatedWeight: 2100, VolumeCubicFt: 220, RequiredDeliveryDate: tomorrow, DeliveryWindow: models.TimeWindow{Start: "09:00", End: "14:00"}, Address: "200 Dock Avenue", City: "Brooklyn", Priority: models.PriorityExpress},
		{ID: "ORD-78343", CustomerID: "CUS003", CustomerName: "Valley Fresh Market", Status: models.OrderUnplanned, Type: models.OrderOwnFleet, EstimatedWeight: 890, VolumeCubicFt: 95, RequiredDeliveryDate: tomorrow, DeliveryWindow: models.TimeWindow{Start: "06:00", End: "10:00"}, Address: "75 Valley Road", City: "Queens", Priority: models.PriorityUrgent, CreditHold: true},
		{ID: "ORD-78344", CustomerID: "CUS004", CustomerName: "City Grocers", Status: models.OrderUnplanned, Type: models.OrderCarrier, EstimatedWeight: 450, VolumeCubicFt: 48, RequiredDeliveryDate: tomorrow, DeliveryWindow: models.TimeWindow{Start: "10:00", End: "16:00"}, Address: "320 Main Street", City: "Bronx", Priority: models.PriorityStandard},

		// Routing
		{ID: "ORD-78320", CustomerID: "CUS005", CustomerName: "Prime Wholesale", Status: models.OrderRouting, Type: models.OrderOwnFleet, EstimatedWeight: 3200, ActualWeight: weight(3180), VolumeCubicFt: 380, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "07:00", End: "11:00"}, Address: "500 Industrial Blvd", City: "Jersey City", Priority: models.PriorityStandard, AssignedRouteID: "RTE001"},
		{ID: "ORD-78321", CustomerID: "CUS006", CustomerName: "Central Supply Co", Status: models.OrderRouting, Type: models.OrderOwnFleet, EstimatedWeight: 1850, ActualWeight: weight(1920), VolumeCubicFt: 210, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "08:00", End: "12:00"}, Address: "280 Supply Lane", City: "New York", Priority: models.PriorityExpress, AssignedRouteID: "RTE001"},
		{ID: "ORD-78322", CustomerID: "CUS007", CustomerName: "Eastern Imports", Status: models.OrderRouting, Type: models.OrderOwnFleet, EstimatedWeight: 2400, ActualWeight: weight(2380), VolumeCubicFt: 290, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "09:00", End: "14:00"}, Address: "150 Harbor Drive", City: "Brooklyn", Priority: models.PriorityStandard, AssignedRouteID: "RTE002"},

		// In transit
		{ID: "ORD-78301", CustomerID: "CUS008", CustomerName: "Pacific Trading", Status: models.OrderInTransit, Type: models.OrderOwnFleet, EstimatedWeight: 1600, ActualWeight: weight(1580), VolumeCubicFt: 175, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "10:00", End: "14:00"}, Address: "400 Pacific Avenue", City: "Queens", Priority: models.PriorityStandard, AssignedRouteID: "RTE003"},
		{ID: "ORD-78302", CustomerID: "CUS009", CustomerName: "Summit Foods", Status: models.OrderInTransit, Type: models.OrderOwnFleet, EstimatedWeight: 2200, ActualWeight: weight(2250), VolumeCubicFt: 260, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "11:00", End: "15:00"}, Address: "720 Summit Street", City: "Bronx", Priority: models.PriorityExpress, AssignedRouteID: "RTE003"},
		{ID: "ORD-78303", CustomerID: "CUS010", CustomerName: "Golden Gate Dist.", Status: models.OrderInTransit, Type: models.OrderCarrier, EstimatedWeight: 680, VolumeCubicFt: 72, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "09:00", End: "17:00"}, Address: "55 Gate Street", City: "Jersey City", Priority: models.PriorityStandard, CarrierTrackingID: "FX789456123"},
	}

	// Delivered history, one order per day going backwards from today.
	priorities := []models.OrderPriority{models.PriorityStandard, models.PriorityExpress, models.PriorityUrgent}
	for i := 0; i < 35; i++ {
		cust := customers[i%len(customers)]
		typ := models.OrderOwnFleet
		if i%5 == 0 {
			typ = models.OrderCarrier
		}
		est := float64(800 + (i*137)%2500)
		act := float64(780 + (i*151)%2500)
		orders = append(orders, models.Order{
			ID:                   fmt.Sprintf("ORD-78%d", 200+i),
			CustomerID:           cust.ID,
			CustomerName:         cust.Name,
			Status:               models.OrderDelivered,
			Type:                 typ,
			EstimatedWeight:      est,
			ActualWeight:         weight(act),
			VolumeCubicFt:        float64(80 + (i*61)%300),
			RequiredDeliveryDate: today.AddDate(0, 0, -i),
			DeliveryWindow:       models.TimeWindow{Start: "08:00", End: "14:00"},
			Address:              cust.Address,
			City:                 cust.City,
			Priority:             priorities[i%3],
		})
	}

	// Exceptions
	orders = append(orders,
		models.Order{ID: "ORD-78350", CustomerID: "CUS003", CustomerName: "Valley Fresh Market", Status: models.OrderException, Type: models.OrderOwnFleet, EstimatedWeight: 1450, VolumeCubicFt: 160, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "07:00", End: "11:00"}, Address: "75 Valley Road", City: "Queens", Priority: models.PriorityUrgent, CreditHold: true},
		models.Order{ID: "ORD-78351", CustomerID: "CUS005", CustomerName: "Prime Wholesale", Status: models.OrderException, Type: models.OrderOwnFleet, EstimatedWeight: 3800, ActualWeight: weight(4200), VolumeCubicFt: 420, RequiredDeliveryDate: today, DeliveryWindow: models.TimeWindow{Start: "08:00", End: "12:00"}, Address: "500 Industrial Blvd", City: "Jersey City", Priority: models.PriorityExpress},
	)

	return orders
}

func seedRoutes(now time.Time) []models.Route {
	at := func(hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	}
	arrived := func(hour, min int) *time.Time {
		t := at(hour, min)
		return &t
	}

	return []models.Route{
		{
			ID: "RTE001", DriverID: "DRV001", TruckID: "TRK001", Status: models.RouteInProgress,
			PlannedDeparture: at(6, 0), EstimatedReturn: at(14, 0),
			TotalMiles: 85, TotalWeight: 5050, TotalVolume: 590,
			Stops: []models.RouteStop{
				{ID: "STP001", OrderID: "ORD-78320", CustomerName: "Prime Wholesale", Address: "500 Industrial Blvd", PlannedArrival: at(7, 30), ActualArrival: arrived(7, 25), TimeWindowStart: "07:00", TimeWindowEnd: "11:00", Status: models.StopCompleted, Sequence: 1},
				{ID: "STP002", OrderID: "ORD-78321", CustomerName: "Central Supply Co", Address: "280 Supply Lane", PlannedArrival: at(9, 0), TimeWindowStart: "08:00", TimeWindowEnd: "12:00", Status: models.StopPending, Sequence: 2},
			},
		},
		{
			ID: "RTE002", DriverID: "DRV002", TruckID: "TRK002", Status: models.RouteInProgress,
			PlannedDeparture: at(5, 30), EstimatedReturn: at(13, 30),
			TotalMiles: 72, TotalWeight: 2400, TotalVolume: 290,
			Stops: []models.RouteStop{
				{ID: "STP003", OrderID: "ORD-78322", CustomerName: "Eastern Imports", Address: "150 Harbor Drive", PlannedArrival: at(8, 0), TimeWindowStart: "09:00", TimeWindowEnd: "14:00", Status: models.StopPending, Sequence: 1},
			},
		},
		{
			ID: "RTE003", DriverID: "DRV004", TruckID: "TRK004", Status: models.RouteInProgress,
			PlannedDeparture: at(7, 0), EstimatedReturn: at(15, 0),
			TotalMiles: 95, TotalWeight: 3800, TotalVolume: 435,
			Stops: []models.RouteStop{
				{ID: "STP004", OrderID: "ORD-78301", CustomerName: "Pacific Trading", Address: "400 Pacific Avenue", PlannedArrival: at(10, 30), TimeWindowStart: "10:00", TimeWindowEnd: "14:00", Status: models.StopPending, Sequence: 1},
				{ID: "STP005", OrderID: "ORD-78302", CustomerName: "Summit Foods", Address: "720 Summit Street", PlannedArrival: at(12, 0), TimeWindowStart: "11:00", TimeWindowEnd: "15:00", Status: models.StopPending, Sequence: 2},
			},
		},
	}
}

func seedContainers(now time.Time) []models.ImportContainer {
	return []models.ImportContainer{
		{ID: "IMP001", ContainerID: "MSKU-7234561", ArrivalDate: now.AddDate(0, 0, -5), FreeDaysRemaining: 2, DemurragePerDay: 150, Status: models.ContainerAtWarehouse, Contents: "Frozen Seafood - 20 Pallets", TotalPallets: 20, UnloadedPallets: 8},
		{ID: "IMP002", ContainerID: "COSU-8456123", ArrivalDate: now.AddDate(0, 0, -2), FreeDaysRemaining: 5, DemurragePerDay: 175, Status: models.ContainerAtWarehouse, Contents: "Dry Goods - 24 Pallets", TotalPallets: 24, UnloadedPallets: 24},
		{ID: "IMP003", ContainerID: "HLXU-9123456", ArrivalDate: now.AddDate(0, 0, -6), FreeDaysRemaining: 0, DemurragePerDay: 200, Status: models.ContainerAtWarehouse, Contents: "Refrigerated Produce - 18 Pallets", TotalPallets: 18, UnloadedPallets: 4},
	}
}

func seedCarrierShipments(now time.Time) []models.CarrierShipment {
	return []models.CarrierShipment{
		{ID: "SHP001", Carrier: "FedEx", TrackingNumber: "FX789456123", OrderID: "ORD-78303", Status: models.ShipmentInTransit, EstimatedDelivery: now, Cost: 45.50},
		{ID: "SHP002", Carrier: "UPS", TrackingNumber: "1Z999AA10123456784", OrderID: "ORD-78344", Status: models.ShipmentLabelCreated, EstimatedDelivery: now.AddDate(0, 0, 1), Cost: 38.25},
		{ID: "SHP003", Carrier: "LTL", TrackingNumber: "LTL-2024-78456", OrderID: "ORD-78200", Status: models.ShipmentDelivered, EstimatedDelivery: now.AddDate(0, 0, -1), Cost: 125.00},
		{ID: "SHP004", Carrier: "FedEx", TrackingNumber: "FX789456124", OrderID: "ORD-78205", Status: models.ShipmentDelivered, EstimatedDelivery: now.AddDate(0, 0, -2), Cost: 52.75},
		{ID: "SHP005", Carrier: "UPS", TrackingNumber: "1Z999AA10123456785", OrderID: "ORD-78210", Status: models.ShipmentPickedUp, EstimatedDelivery: now, Cost: 41.00},
	}
}

func seedSettlements(now time.Time) []models.DriverSettlement {
	return []models.DriverSettlement{
		{ID: "SET001", DriverID: "DRV001", DriverName: "John Martinez", RouteID: "RTE001", Date: now, ExpectedCash: 1250, ExpectedCheck: 3400, ActualCash: 1250, ActualCheck: 3400, Variance: 0, Status: models.SettlementReconciled, ProofImages: []string{"proofs/SET001/check1.jpg", "proofs/SET001/check2.jpg"}},
		{ID: "SET002", DriverID: "DRV002", DriverName: "Sarah Chen", RouteID: "RTE002", Date: now, ExpectedCash: 890, ExpectedCheck: 2100, ActualCash: 870, ActualCheck: 2100, Variance: -20, Status: models.SettlementDiscrepancy, ProofImages: []string{"proofs/SET002/check3.jpg"}},
		{ID: "SET003", DriverID: "DRV004", DriverName: "Emily Davis", RouteID: "RTE003", Date: now, ExpectedCash: 1500, ExpectedCheck: 4200, ActualCash: 1500, ActualCheck: 4200, Variance: 0, Status: models.SettlementPending, ProofImages: []string{}},
		{ID: "SET004", DriverID: "DRV006", DriverName: "Lisa Wang", RouteID: "RTE004", Date: now.AddDate(0, 0, -1), ExpectedCash: 980, ExpectedCheck: 2800, ActualCash: 980, ActualCheck: 2750, Variance: -50, Status: models.SettlementDiscrepancy, ProofImages: []string{"proofs/SET004/check4.jpg", "proofs/SET004/check5.jpg"}},
		{ID: "SET005", DriverID: "DRV008", DriverName: "Ana Gonzalez", RouteID: "RTE005", Date: now.AddDate(0, 0, -1), ExpectedCash: 1100, ExpectedCheck: 3100, ActualCash: 1100, ActualCheck: 3100, Variance: 0, Status: models.SettlementReconciled, ProofImages: []string{"proofs/SET005/check6.jpg"}},
		{ID: "SET006", DriverID: "DRV010", DriverName: "Rachel Brown", RouteID: "RTE006", Date: now.AddDate(0, 0, -2), ExpectedCash: 750, ExpectedCheck: 1900, ActualCash: 750, ActualCheck: 1900, Variance: 0, Status: models.SettlementReconciled, ProofImages: []string{}},
	}
}

func seedExceptions(now time.Time) []models.Exception {
	return []models.Exception{
		{ID: "EXC001", Type: models.ExcTemperature, Severity: models.SeverityCritical, Message: "Temperature Spike - Truck TRK004 reading 42°F (threshold: 38°F)", Timestamp: now.Add(-5 * time.Minute), RelatedEntity: models.RelatedEntity{Type: "driver", ID: "DRV004", Name: "Emily Davis"}},
		{ID: "EXC002", Type: models.ExcDelay, Severity: models.SeverityMedium, Message: "Route 3 - Running 32 minutes behind schedule", Timestamp: now.Add(-10 * time.Minute), RelatedEntity: models.RelatedEntity{Type: "route", ID: "RTE003", Name: "Route 3"}},
		{ID: "EXC003", Type: models.ExcCreditHold, Severity: models.SeverityHigh, Message: "Valley Fresh Market - Order blocked due to credit limit exceeded", Timestamp: now.Add(-30 * time.Minute), RelatedEntity: models.RelatedEntity{Type: "customer", ID: "CUS003", Name: "Valley Fresh Market"}},
		{ID: "EXC004", Type: models.ExcMissingItem, Severity: models.SeverityLow, Message: "Order ORD-78320 - 2 cases short vs manifest", Timestamp: now.Add(-1 * time.Hour), RelatedEntity: models.RelatedEntity{Type: "order", ID: "ORD-78320", Name: "ORD-78320"}, Resolved: true},
		{ID: "EXC005", Type: models.ExcDelay, Severity: models.SeverityHigh, Message: "Driver James Wilson - Offline for 4+ hours", Timestamp: now.Add(-2 * time.Hour), RelatedEntity: models.RelatedEntity{Type: "driver", ID: "DRV007", Name: "James Wilson"}},
	}
}

func seedRTIAssets(now time.Time) []models.RTIAsset {
	return []models.RTIAsset{
		{ID: "RTI001", Type: models.RTIPallet, CustomerID: "CUS001", CustomerName: "Metro Foods Inc", QuantityOut: 45, QuantityReturned: 32, Balance: 13, LastActivity: now.Add(-24 * time.Hour)},
		{ID: "RTI002", Type: models.RTICrate, CustomerID: "CUS001", CustomerName: "Metro Foods Inc", QuantityOut: 120, QuantityReturned: 95, Balance: 25, LastActivity: now.Add(-48 * time.Hour)},
		{ID: "RTI003", Type: models.RTIPallet, CustomerID: "CUS002", CustomerName: "Harbor Distributors", QuantityOut: 80, QuantityReturned: 78, Balance: 2, LastActivity: now.Add(-12 * time.Hour)},
		{ID: "RTI004", Type: models.RTIDolly, CustomerID: "CUS003", CustomerName: "Valley Fresh Market", QuantityOut: 15, QuantityReturned: 8, Balance: 7, LastActivity: now.Add(-72 * time.Hour)},
		{ID: "RTI005", Type: models.RTIPallet, CustomerID: "CUS005", CustomerName: "Prime Wholesale", QuantityOut: 200, QuantityReturned: 145, Balance: 55, LastActivity: now.Add(-24 * time.Hour)},
	}
}

func seedUsers() ([]models.User, error) {
	logins := []struct {
		email, name, password, role string
	}{
		{"admin@logicore.example", "Operations Admin", "controltower", "admin"},
		{"dispatch@logicore.example", "Dispatch Desk", "dispatchdesk", "dispatcher"},
		{"viewer@logicore.example", "Warehouse TV", "watchonly", "viewer"},
	}

	users := make([]models.User, 0, len(logins))
	for _, l := range logins {
		hashed, err := auth.HashPassword(l.password)
		if err != nil {
			return nil, err
		}
		users = append(users, models.User{
			Email:    l.email,
			Name:     l.name,
			Password: hashed,
			Role:     l.role,
			Status:   "active",
		})
	}
	return users, nil
}
