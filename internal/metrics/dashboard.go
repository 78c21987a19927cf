// Package metrics derives the dashboard-wide scalar set from the entity
// snapshot. Everything here is a pure function of (snapshot, now) and is
// recomputed on each call; nothing is cached.
package metrics

import (
	"math"
	"time"

	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
)

// HighRTIBalanceThreshold flags a customer ledger line holding more
// returnable assets than policy tolerates.
const HighRTIBalanceThreshold = 20

// ExpiringFreeDays is the importer's-clock warning window: a container with
// this many free days or fewer is about to start (or already is) accruing
// demurrage.
const ExpiringFreeDays = 1

// VolumeSplit is the own-fleet vs outside-carrier order mix. The percentages
// are complementary by construction: CarrierPercent = 100 - OwnFleetPercent,
// never rounded independently, so they always sum to exactly 100 (or 0/0 for
// an empty board).
type VolumeSplit struct {
	OwnFleetOrders  int `json:"ownFleetOrders"`
	CarrierOrders   int `json:"carrierOrders"`
	OwnFleetPercent int `json:"ownFleetPercent"`
	CarrierPercent  int `json:"carrierPercent"`
}

// SettlementTotals sums the money columns of the reconciliation view.
type SettlementTotals struct {
	ExpectedCash  float64 `json:"expectedCash"`
	ExpectedCheck float64 `json:"expectedCheck"`
	ActualCash    float64 `json:"actualCash"`
	ActualCheck   float64 `json:"actualCheck"`
	Variance      float64 `json:"variance"`
}

// ImportStats is the header strip of the imports page.
type ImportStats struct {
	Containers       int     `json:"containers"`
	ExpiringSoon     int     `json:"expiringSoon"`
	AvgFreeDays      int     `json:"avgFreeDays"`
	DemurrageAccrued float64 `json:"demurrageAccrued"`
}

// DashboardStats is the flat scalar set rendered across the control tower.
type DashboardStats struct {
	TotalOrders        int `json:"totalOrders"`
	UnplannedOrders    int `json:"unplannedOrders"`
	InTransitOrders    int `json:"inTransitOrders"`
	DeliveredToday     int `json:"deliveredToday"`
	ExceptionOrders    int `json:"exceptionOrders"`
	CriticalExceptions int `json:"criticalExceptions"`
	ActiveDrivers      int `json:"activeDrivers"`
	TotalDrivers       int `json:"totalDrivers"`

	VolumeSplit VolumeSplit `json:"volumeSplit"`

	PendingReconciliations int              `json:"pendingReconciliations"`
	Discrepancies          int              `json:"discrepancies"`
	SettlementTotals       SettlementTotals `json:"settlementTotals"`

	Imports ImportStats `json:"imports"`

	RTIOutstanding      int `json:"rtiOutstanding"`
	HighBalanceAccounts int `json:"highBalanceAccounts"`

	OrderStatusCounts  map[models.OrderStatus]int      `json:"orderStatusCounts"`
	DriverStatusCounts map[models.DriverStatus]int     `json:"driverStatusCounts"`
	TruckStatusCounts  map[models.TruckStatus]int      `json:"truckStatusCounts"`
	SettlementCounts   map[models.SettlementStatus]int `json:"settlementCounts"`
}

// Compute derives the full scalar set. Empty collections produce zero counts
// and sums; no input shape makes it fail.
func Compute(snap *store.Snapshot, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalOrders:        len(snap.Orders),
		TotalDrivers:       len(snap.Drivers),
		OrderStatusCounts:  map[models.OrderStatus]int{},
		DriverStatusCounts: map[models.DriverStatus]int{},
		TruckStatusCounts:  map[models.TruckStatus]int{},
		SettlementCounts:   map[models.SettlementStatus]int{},
	}

	for _, o := range snap.Orders {
		stats.OrderStatusCounts[o.Status]++
		switch o.Status {
		case models.OrderUnplanned:
			stats.UnplannedOrders++
		case models.OrderInTransit:
			stats.InTransitOrders++
		case models.OrderDelivered:
			if sameDay(o.RequiredDeliveryDate, now) {
				stats.DeliveredToday++
			}
		case models.OrderException:
			stats.ExceptionOrders++
		}
	}
	stats.VolumeSplit = computeVolumeSplit(snap.Orders)

	for _, e := range snap.Exceptions {
		if e.Severity == models.SeverityCritical && !e.Resolved {
			stats.CriticalExceptions++
		}
	}

	for _, d := range snap.Drivers {
		stats.DriverStatusCounts[d.Status]++
		if d.Status == models.DriverActive {
			stats.ActiveDrivers++
		}
	}

	for _, t := range snap.Trucks {
		stats.TruckStatusCounts[t.Status]++
	}

	for _, s := range snap.Settlements {
		stats.SettlementCounts[s.Status]++
		switch s.Status {
		case models.SettlementPending:
			stats.PendingReconciliations++
		case models.SettlementDiscrepancy:
			stats.Discrepancies++
		}
		stats.SettlementTotals.ExpectedCash += s.ExpectedCash
		stats.SettlementTotals.ExpectedCheck += s.ExpectedCheck
		stats.SettlementTotals.ActualCash += s.ActualCash
		stats.SettlementTotals.ActualCheck += s.ActualCheck
		stats.SettlementTotals.Variance += s.Variance
	}

	stats.Imports = computeImportStats(snap.Containers)

	for _, a := range snap.RTIAssets {
		stats.RTIOutstanding += a.Balance
		if a.Balance > HighRTIBalanceThreshold {
			stats.HighBalanceAccounts++
		}
	}

	return stats
}

func computeVolumeSplit(orders []models.Order) VolumeSplit {
	split := VolumeSplit{}
	for _, o := range orders {
		switch o.Type {
		case models.OrderOwnFleet:
			split.OwnFleetOrders++
		case models.OrderCarrier:
			split.CarrierOrders++
		}
	}

	total := split.OwnFleetOrders + split.CarrierOrders
	if total == 0 {
		return split
	}
	split.OwnFleetPercent = int(math.Round(float64(split.OwnFleetOrders) / float64(total) * 100))
	split.CarrierPercent = 100 - split.OwnFleetPercent
	return split
}

func computeImportStats(containers []models.ImportContainer) ImportStats {
	stats := ImportStats{Containers: len(containers)}
	if len(containers) == 0 {
		return stats
	}

	freeDaysSum := 0
	for _, c := range containers {
		freeDaysSum += c.FreeDaysRemaining
		if c.FreeDaysRemaining <= ExpiringFreeDays {
			stats.ExpiringSoon++
		}
		stats.DemurrageAccrued += DemurrageAccrued(c)
	}
	stats.AvgFreeDays = int(math.Round(float64(freeDaysSum) / float64(len(containers))))
	return stats
}

// DemurrageAccrued is the penalty a single container has run up so far: zero
// while free days remain, otherwise |freeDaysRemaining| days at the
// container's daily rate. A container at exactly zero free days is on the
// clock but has accrued nothing yet.
func DemurrageAccrued(c models.ImportContainer) float64 {
	if c.FreeDaysRemaining > 0 {
		return 0
	}
	return math.Abs(float64(c.FreeDaysRemaining)) * c.DemurragePerDay
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
