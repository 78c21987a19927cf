package handlers

import (
	"errors"
	"net/http"

	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Store *store.Snapshot
}

// ListOrders serves the order board: a status tab plus free-text search over
// order ID or customer name, with per-status tab counts alongside.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := c.DefaultQuery("status", views.FilterAll)
	q := c.Query("q")

	filtered, err := views.FilterOrders(h.Store.Orders, status, q)
	if err != nil {
		if errors.Is(err, views.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter orders"})
		return
	}

	counts := map[models.OrderStatus]int{}
	for _, o := range h.Store.Orders {
		counts[o.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": filtered,
		"counts": counts,
		"total":  len(h.Store.Orders),
	})
}

// GetOrder returns one order joined with its customer and, for carrier-type
// orders, the outside-carrier shipment. Dangling references come back null.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	order, ok := h.Store.OrderByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	resp := gin.H{"order": order, "customer": nil, "carrierShipment": nil}
	if customer, ok := h.Store.CustomerByID(order.CustomerID); ok {
		resp["customer"] = customer
	}
	if shipment, ok := h.Store.ShipmentByOrderID(order.ID); ok {
		resp["carrierShipment"] = shipment
	}

	c.JSON(http.StatusOK, resp)
}
