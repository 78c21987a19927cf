package handlers

import (
	"errors"
	"net/http"

	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	Store *store.Snapshot
}

// TruckView is one fleet card: the truck plus its current-load utilization,
// null when the truck has no usable capacity on file.
type TruckView struct {
	models.Truck
	Utilization *views.CapacityUsage `json:"utilization"`
}

// ListTrucks serves the fleet board with its status tabs and per-truck load
// bars.
func (h *FleetHandler) ListTrucks(c *gin.Context) {
	status := c.DefaultQuery("status", views.FilterAll)

	filtered, err := views.FilterTrucks(h.Store.Trucks, status)
	if err != nil {
		if errors.Is(err, views.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter trucks"})
		return
	}

	fleet := make([]TruckView, 0, len(filtered))
	for _, t := range filtered {
		view := TruckView{Truck: t}
		if usage, ok := views.EvaluateTruckLoad(t); ok {
			view.Utilization = &usage
		}
		fleet = append(fleet, view)
	}

	counts := map[models.TruckStatus]int{}
	for _, t := range h.Store.Trucks {
		counts[t.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"trucks": fleet,
		"counts": counts,
		"total":  len(h.Store.Trucks),
	})
}
