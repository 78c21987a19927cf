package store

import (
	"sort"

	"logicore-tms-api-server/internal/models"
)

// Snapshot holds every entity collection the dashboard serves. It is built
// once at process start and never mutated afterwards; all derived values are
// recomputed from it on demand.
type Snapshot struct {
	Drivers          []models.Driver
	Trucks           []models.Truck
	Orders           []models.Order
	Routes           []models.Route
	Containers       []models.ImportContainer
	CarrierShipments []models.CarrierShipment
	Customers        []models.Customer
	Settlements      []models.DriverSettlement
	Exceptions       []models.Exception
	RTIAssets        []models.RTIAsset
	Users            []models.User

	driversByID     map[string]models.Driver
	trucksByID      map[string]models.Truck
	ordersByID      map[string]models.Order
	routesByID      map[string]models.Route
	customersByID   map[string]models.Customer
	settlementsByID map[string]models.DriverSettlement
	shipmentByOrder map[string]models.CarrierShipment
	usersByEmail    map[string]models.User
}

// index builds the ID maps behind the lookup methods. Called once by the
// seeder after the collections are populated.
func (s *Snapshot) index() {
	s.driversByID = make(map[string]models.Driver, len(s.Drivers))
	for _, d := range s.Drivers {
		s.driversByID[d.ID] = d
	}
	s.trucksByID = make(map[string]models.Truck, len(s.Trucks))
	for _, t := range s.Trucks {
		s.trucksByID[t.ID] = t
	}
	s.ordersByID = make(map[string]models.Order, len(s.Orders))
	for _, o := range s.Orders {
		s.ordersByID[o.ID] = o
	}
	s.routesByID = make(map[string]models.Route, len(s.Routes))
	for _, r := range s.Routes {
		s.routesByID[r.ID] = r
	}
	s.customersByID = make(map[string]models.Customer, len(s.Customers))
	for _, c := range s.Customers {
		s.customersByID[c.ID] = c
	}
	s.settlementsByID = make(map[string]models.DriverSettlement, len(s.Settlements))
	for _, st := range s.Settlements {
		s.settlementsByID[st.ID] = st
	}
	s.shipmentByOrder = make(map[string]models.CarrierShipment, len(s.CarrierShipments))
	for _, sh := range s.CarrierShipments {
		s.shipmentByOrder[sh.OrderID] = sh
	}
	s.usersByEmail = make(map[string]models.User, len(s.Users))
	for _, u := range s.Users {
		s.usersByEmail[u.Email] = u
	}
}

// Every cross-entity reference is resolved through one of these lookups.
// A dangling ID is reported as ok=false, never as a panic; callers degrade
// the dependent field to "no data".

func (s *Snapshot) DriverByID(id string) (models.Driver, bool) {
	d, ok := s.driversByID[id]
	return d, ok
}

func (s *Snapshot) TruckByID(id string) (models.Truck, bool) {
	t, ok := s.trucksByID[id]
	return t, ok
}

func (s *Snapshot) OrderByID(id string) (models.Order, bool) {
	o, ok := s.ordersByID[id]
	return o, ok
}

func (s *Snapshot) RouteByID(id string) (models.Route, bool) {
	r, ok := s.routesByID[id]
	return r, ok
}

func (s *Snapshot) CustomerByID(id string) (models.Customer, bool) {
	c, ok := s.customersByID[id]
	return c, ok
}

func (s *Snapshot) SettlementByID(id string) (models.DriverSettlement, bool) {
	st, ok := s.settlementsByID[id]
	return st, ok
}

// ShipmentByOrderID finds the outside-carrier shipment covering an order.
func (s *Snapshot) ShipmentByOrderID(orderID string) (models.CarrierShipment, bool) {
	sh, ok := s.shipmentByOrder[orderID]
	return sh, ok
}

func (s *Snapshot) UserByEmail(email string) (models.User, bool) {
	u, ok := s.usersByEmail[email]
	return u, ok
}

// StopsInOrder returns a route's stops sorted by sequence. The sort is stable
// so duplicate sequence numbers (not expected, but possible in loose data)
// keep their input order instead of crashing or flapping.
func StopsInOrder(r models.Route) []models.RouteStop {
	stops := make([]models.RouteStop, len(r.Stops))
	copy(stops, r.Stops)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Sequence < stops[j].Sequence
	})
	return stops
}
