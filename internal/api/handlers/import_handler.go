package handlers

import (
	"net/http"
	"time"

	"logicore-tms-api-server/internal/metrics"
	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	Store *store.Snapshot
}

// ContainerView is one importer's-clock row: the container with its accrued
// demurrage, unloading progress and arrival age. UnloadedPercent is null for
// a zero-pallet container rather than a divide-by-zero.
type ContainerView struct {
	models.ImportContainer
	DemurrageAccrued float64  `json:"demurrageAccrued"`
	UnloadedPercent  *float64 `json:"unloadedPercent"`
	ArrivalAge       string   `json:"arrivalAge"`
}

// ListContainers serves the demurrage clock, most urgent container first.
func (h *ImportHandler) ListContainers(c *gin.Context) {
	now := time.Now()
	sorted := views.SortContainers(h.Store.Containers)

	containers := make([]ContainerView, 0, len(sorted))
	for _, ct := range sorted {
		view := ContainerView{
			ImportContainer:  ct,
			DemurrageAccrued: metrics.DemurrageAccrued(ct),
			ArrivalAge:       views.RelativeAge(ct.ArrivalDate, now),
		}
		if ct.TotalPallets > 0 {
			pct := float64(ct.UnloadedPallets) / float64(ct.TotalPallets) * 100
			view.UnloadedPercent = &pct
		}
		containers = append(containers, view)
	}

	stats := metrics.Compute(h.Store, now).Imports

	c.JSON(http.StatusOK, gin.H{
		"containers": containers,
		"stats":      stats,
	})
}
