package handlers

import (
	"errors"
	"net/http"
	"time"

	"logicore-tms-api-server/internal/metrics"
	"logicore-tms-api-server/internal/s3"
	"logicore-tms-api-server/internal/store"
	"logicore-tms-api-server/internal/views"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	Store *store.Snapshot
	// Presigner is optional; without it proof images are returned as raw
	// object keys.
	Presigner *s3.Presigner
}

// ListSettlements serves the reconciliation view: status tabs, driver/route
// search, and the money totals over the whole settlement set.
func (h *FinanceHandler) ListSettlements(c *gin.Context) {
	status := c.DefaultQuery("status", views.FilterAll)
	q := c.Query("q")

	filtered, err := views.FilterSettlements(h.Store.Settlements, status, q)
	if err != nil {
		if errors.Is(err, views.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter settlements"})
		return
	}

	stats := metrics.Compute(h.Store, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"settlements": filtered,
		"totals":      stats.SettlementTotals,
		"counts":      stats.SettlementCounts,
	})
}

// GetSettlementProofs resolves a settlement's proof-image keys into
// fetchable URLs.
func (h *FinanceHandler) GetSettlementProofs(c *gin.Context) {
	settlement, ok := h.Store.SettlementByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settlement not found"})
		return
	}

	proofs := make([]gin.H, 0, len(settlement.ProofImages))
	for _, key := range settlement.ProofImages {
		url := key
		if h.Presigner != nil {
			resolved, err := h.Presigner.ResolveURL(c.Request.Context(), key)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve proof image", "details": err.Error()})
				return
			}
			url = resolved
		}
		proofs = append(proofs, gin.H{"key": key, "url": url})
	}

	c.JSON(http.StatusOK, gin.H{
		"settlementId": settlement.ID,
		"proofs":       proofs,
	})
}

// CustomerCreditView is one credit-exposure row. Utilization is null for a
// zero credit limit rather than a divide-by-zero.
type CustomerCreditView struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CreditLimit       float64  `json:"creditLimit"`
	CurrentBalance    float64  `json:"currentBalance"`
	CreditUtilization *float64 `json:"creditUtilization"`
	CreditHold        bool     `json:"creditHold"`
}

// ListCustomers serves the credit-exposure table. A customer is flagged on
// hold when any of their open orders carries the creditHold marker.
func (h *FinanceHandler) ListCustomers(c *gin.Context) {
	onHold := map[string]bool{}
	for _, o := range h.Store.Orders {
		if o.CreditHold {
			onHold[o.CustomerID] = true
		}
	}

	customers := make([]CustomerCreditView, 0, len(h.Store.Customers))
	for _, cust := range h.Store.Customers {
		view := CustomerCreditView{
			ID:             cust.ID,
			Name:           cust.Name,
			CreditLimit:    cust.CreditLimit,
			CurrentBalance: cust.CurrentBalance,
			CreditHold:     onHold[cust.ID],
		}
		if cust.CreditLimit > 0 {
			pct := cust.CurrentBalance / cust.CreditLimit * 100
			view.CreditUtilization = &pct
		}
		customers = append(customers, view)
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
