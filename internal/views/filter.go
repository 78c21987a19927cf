package views

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"logicore-tms-api-server/internal/models"
)

// FilterAll is the identity status filter every view accepts.
const FilterAll = "all"

// ErrInvalidFilter marks a status value outside a view's enumerated set.
// Filters fail closed: the caller gets this error and an empty slice rather
// than a silently unfiltered (or quietly empty) result. Handlers translate it
// to HTTP 400 so "bad filter" stays distinguishable from "no matches".
var ErrInvalidFilter = errors.New("invalid filter value")

func invalidFilter(value string) error {
	return fmt.Errorf("%w: %q", ErrInvalidFilter, value)
}

// matches reports whether q is a case-insensitive substring of any of the
// fields. An empty query matches everything.
func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

var severityRank = map[models.Severity]int{
	models.SeverityCritical: 0,
	models.SeverityHigh:     1,
	models.SeverityMedium:   2,
	models.SeverityLow:      3,
}

// rankSeverity places values outside the enumerated set after low, so loose
// data cannot jump the triage queue.
func rankSeverity(s models.Severity) int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// SortExceptions orders an exception feed for triage: unresolved before
// resolved, then by severity critical -> high -> medium -> low. The sort is
// stable, so exceptions with equal keys keep their input order. The input
// slice is not modified.
func SortExceptions(exceptions []models.Exception) []models.Exception {
	sorted := make([]models.Exception, len(exceptions))
	copy(sorted, exceptions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Resolved != b.Resolved {
			return !a.Resolved
		}
		return rankSeverity(a.Severity) < rankSeverity(b.Severity)
	})
	return sorted
}

// Unresolved keeps only the exceptions still open, in input order.
func Unresolved(exceptions []models.Exception) []models.Exception {
	open := []models.Exception{}
	for _, e := range exceptions {
		if !e.Resolved {
			open = append(open, e)
		}
	}
	return open
}

// FilterOrders applies the order board's view state: a status tab and a
// free-text query matched against order ID or customer name (either one).
func FilterOrders(orders []models.Order, status, q string) ([]models.Order, error) {
	if status != FilterAll && !models.OrderStatus(status).Valid() {
		return nil, invalidFilter(status)
	}

	out := []models.Order{}
	for _, o := range orders {
		if status != FilterAll && o.Status != models.OrderStatus(status) {
			continue
		}
		if !matches(q, o.ID, o.CustomerName) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// FilterDrivers applies the driver roster's status tab and name search.
func FilterDrivers(drivers []models.Driver, status, q string) ([]models.Driver, error) {
	if status != FilterAll && !models.DriverStatus(status).Valid() {
		return nil, invalidFilter(status)
	}

	out := []models.Driver{}
	for _, d := range drivers {
		if status != FilterAll && d.Status != models.DriverStatus(status) {
			continue
		}
		if !matches(q, d.Name) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// FilterTrucks applies the fleet board's status tab.
func FilterTrucks(trucks []models.Truck, status string) ([]models.Truck, error) {
	if status != FilterAll && !models.TruckStatus(status).Valid() {
		return nil, invalidFilter(status)
	}

	out := []models.Truck{}
	for _, t := range trucks {
		if status != FilterAll && t.Status != models.TruckStatus(status) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// FilterSettlements applies the reconciliation view's status tab and a query
// matched against driver name or route ID.
func FilterSettlements(settlements []models.DriverSettlement, status, q string) ([]models.DriverSettlement, error) {
	if status != FilterAll && !models.SettlementStatus(status).Valid() {
		return nil, invalidFilter(status)
	}

	out := []models.DriverSettlement{}
	for _, s := range settlements {
		if status != FilterAll && s.Status != models.SettlementStatus(status) {
			continue
		}
		if !matches(q, s.DriverName, s.RouteID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// SortContainers orders the importer's clock most-urgent first: ascending
// freeDaysRemaining, so overdue (negative) containers lead. No secondary key;
// ties keep input order. The input slice is not modified.
func SortContainers(containers []models.ImportContainer) []models.ImportContainer {
	sorted := make([]models.ImportContainer, len(containers))
	copy(sorted, containers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FreeDaysRemaining < sorted[j].FreeDaysRemaining
	})
	return sorted
}

// FilterRTIAssets applies the asset ledger's search, which matches customer
// name only.
func FilterRTIAssets(assets []models.RTIAsset, q string) []models.RTIAsset {
	out := []models.RTIAsset{}
	for _, a := range assets {
		if matches(q, a.CustomerName) {
			out = append(out, a)
		}
	}
	return out
}
