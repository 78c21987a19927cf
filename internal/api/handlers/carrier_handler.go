package handlers

import (
	"net/http"
	"time"

	"logicore-tms-api-server/internal/models"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type CarrierHandler struct {
	Store *store.Snapshot
}

// ShipmentView joins an outside-carrier shipment with its order (null when
// the orderId dangles).
type ShipmentView struct {
	models.CarrierShipment
	Order *models.Order `json:"order"`
	Age   string        `json:"age"`
}

// ListShipments serves the outside-carrier tracking table.
func (h *CarrierHandler) ListShipments(c *gin.Context) {
	now := time.Now()

	shipments := make([]ShipmentView, 0, len(h.Store.CarrierShipments))
	var totalCost float64
	for _, s := range h.Store.CarrierShipments {
		view := ShipmentView{
			CarrierShipment: s,
			Age:             views.RelativeAge(s.EstimatedDelivery, now),
		}
		if order, ok := h.Store.OrderByID(s.OrderID); ok {
			view.Order = &order
		}
		totalCost += s.Cost
		shipments = append(shipments, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"shipments": shipments,
		"totalCost": totalCost,
	})
}
