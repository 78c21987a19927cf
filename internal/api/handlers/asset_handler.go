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

type AssetHandler struct {
	Store *store.Snapshot
}

// RTIAssetView is one ledger line with its activity age and the high-balance
// flag the table highlights.
type RTIAssetView struct {
	models.RTIAsset
	LastActivityAge string `json:"lastActivityAge"`
	HighBalance     bool   `json:"highBalance"`
}

// ListRTIAssets serves the returnable-asset ledger with its customer search
// and outstanding totals.
func (h *AssetHandler) ListRTIAssets(c *gin.Context) {
	q := c.Query("q")
	now := time.Now()

	filtered := views.FilterRTIAssets(h.Store.RTIAssets, q)

	assets := make([]RTIAssetView, 0, len(filtered))
	for _, a := range filtered {
		assets = append(assets, RTIAssetView{
			RTIAsset:        a,
			LastActivityAge: views.RelativeAge(a.LastActivity, now),
			HighBalance:     a.Balance > metrics.HighRTIBalanceThreshold,
		})
	}

	stats := metrics.Compute(h.Store, now)

	c.JSON(http.StatusOK, gin.H{
		"assets":              assets,
		"totalOutstanding":    stats.RTIOutstanding,
		"highBalanceAccounts": stats.HighBalanceAccounts,
	})
}
