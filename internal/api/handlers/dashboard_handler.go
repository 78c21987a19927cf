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

type DashboardHandler struct {
	Store *store.Snapshot
}

// GetStats returns the full aggregate scalar set for the control tower
// header and metric cards. Recomputed per request.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Compute(h.Store, time.Now()))
}

// ExceptionView is one row of the exception feed with its display age.
type ExceptionView struct {
	models.Exception
	Age string `json:"age"`
}

// GetExceptionFeed returns the triage-ordered exception feed: unresolved
// first, critical down to low, stable within equal rank.
func (h *DashboardHandler) GetExceptionFeed(c *gin.Context) {
	now := time.Now()
	sorted := views.SortExceptions(h.Store.Exceptions)

	feed := make([]ExceptionView, 0, len(sorted))
	for _, e := range sorted {
		feed = append(feed, ExceptionView{Exception: e, Age: views.RelativeAge(e.Timestamp, now)})
	}

	c.JSON(http.StatusOK, gin.H{
		"exceptions": feed,
		"active":     len(views.Unresolved(h.Store.Exceptions)),
	})
}

// GetVolumeSplit returns the own-fleet vs outside-carrier donut numbers.
func (h *DashboardHandler) GetVolumeSplit(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Compute(h.Store, time.Now()).VolumeSplit)
}

// GetActivity returns the recent-activity strip: the unresolved exceptions,
// newest first, with relative ages.
func (h *DashboardHandler) GetActivity(c *gin.Context) {
	now := time.Now()
	open := views.Unresolved(h.Store.Exceptions)

	items := make([]gin.H, 0, len(open))
	for _, e := range open {
		items = append(items, gin.H{
			"id":       e.ID,
			"type":     e.Type,
			"severity": e.Severity,
			"message":  e.Message,
			"time":     views.RelativeAge(e.Timestamp, now),
			"entity":   e.RelatedEntity,
		})
	}

	c.JSON(http.StatusOK, gin.H{"activity": items})
}
