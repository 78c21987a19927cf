package handlers

import (
	"errors"
	"net/http"
	"time"

	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	Store *store.Snapshot
}

// DriverView is one roster row: the driver joined with their truck (null on
// a dangling truckId) and the shared freshness classification.
type DriverView struct {
	models.Driver
	Truck   *models.Truck `json:"truck"`
	SyncAge string        `json:"syncAge"`
	Offline bool          `json:"offline"`
}

// ListDrivers serves the driver roster with its status tabs and name search.
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	status := c.DefaultQuery("status", views.FilterAll)
	q := c.Query("q")

	filtered, err := views.FilterDrivers(h.Store.Drivers, status, q)
	if err != nil {
		if errors.Is(err, views.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter drivers"})
		return
	}

	now := time.Now()
	roster := make([]DriverView, 0, len(filtered))
	for _, d := range filtered {
		view := DriverView{
			Driver:  d,
			SyncAge: views.RelativeAge(d.LastSync, now),
			Offline: views.IsOffline(d.LastSync, now),
		}
		if truck, ok := h.Store.TruckByID(d.TruckID); ok {
			view.Truck = &truck
		}
		roster = append(roster, view)
	}

	counts := map[models.DriverStatus]int{}
	for _, d := range h.Store.Drivers {
		counts[d.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"drivers": roster,
		"counts":  counts,
		"total":   len(h.Store.Drivers),
	})
}
