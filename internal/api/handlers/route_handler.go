package handlers

import (
	"net/http"

	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	Store *store.Snapshot
}

// RouteView is one planning row: the route with stops in sequence order, the
// resolved driver and truck (null when dangling), and capacity utilization
// including the cubed-out flag (null without a resolvable truck capacity).
type RouteView struct {
	models.Route
	Driver      *models.Driver       `json:"driver"`
	Truck       *models.Truck        `json:"truck"`
	Utilization *views.CapacityUsage `json:"utilization"`
}

func (h *RouteHandler) buildView(route models.Route) RouteView {
	route.Stops = store.StopsInOrder(route)
	view := RouteView{Route: route}

	if driver, ok := h.Store.DriverByID(route.DriverID); ok {
		view.Driver = &driver
	}
	if truck, ok := h.Store.TruckByID(route.TruckID); ok {
		view.Truck = &truck
		if usage, ok := views.EvaluateRoute(route, truck); ok {
			view.Utilization = &usage
		}
	}
	return view
}

// ListRoutes serves the route-planning board.
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	routes := make([]RouteView, 0, len(h.Store.Routes))
	for _, r := range h.Store.Routes {
		routes = append(routes, h.buildView(r))
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GetRoute returns one route's detail panel.
func (h *RouteHandler) GetRoute(c *gin.Context) {
	route, ok := h.Store.RouteByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, h.buildView(route))
}
