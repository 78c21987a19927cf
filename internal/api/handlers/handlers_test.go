package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logicore-tms-api-server/internal/auth"
	"logicore-tms-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seedForTest(t *testing.T) *store.Snapshot {
	t.Helper()
	snap, err := store.SeedDemo(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return snap
}

func doRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListOrdersInvalidStatusIs400(t *testing.T) {
	h := &OrderHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/orders", h.ListOrders)

	w := doRequest(router, http.MethodGet, "/orders?status=shipped", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "invalid filter")
}

func TestListOrdersSearch(t *testing.T) {
	h := &OrderHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/orders", h.ListOrders)

	w := doRequest(router, http.MethodGet, "/orders?q=harbor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	orders := body["orders"].([]any)
	require.NotEmpty(t, orders)
	for _, o := range orders {
		require.Contains(t, o.(map[string]any)["customerName"], "Harbor")
	}
	// Counts cover the whole board, not the filtered slice.
	require.Equal(t, float64(47), body["total"])
}

func TestGetOrderNotFound(t *testing.T) {
	h := &OrderHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/orders/:id", h.GetOrder)

	w := doRequest(router, http.MethodGet, "/orders/ORD-00000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderJoins(t *testing.T) {
	h := &OrderHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/orders/:id", h.GetOrder)

	// Own-fleet order: customer joined, no carrier shipment.
	w := doRequest(router, http.MethodGet, "/orders/ORD-78341", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.NotNil(t, body["customer"])
	require.Nil(t, body["carrierShipment"])

	// Carrier order: both joined.
	w = doRequest(router, http.MethodGet, "/orders/ORD-78303", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.NotNil(t, body["carrierShipment"])
}

func TestListDriversInvalidStatusIs400(t *testing.T) {
	h := &DriverHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/drivers", h.ListDrivers)

	w := doRequest(router, http.MethodGet, "/drivers?status=driving", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSettlementsInvalidStatusIs400(t *testing.T) {
	h := &FinanceHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/settlements", h.ListSettlements)

	w := doRequest(router, http.MethodGet, "/settlements?status=approved", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSettlementProofsWithoutPresigner(t *testing.T) {
	h := &FinanceHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/settlements/:id/proofs", h.GetSettlementProofs)

	w := doRequest(router, http.MethodGet, "/settlements/SET001/proofs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	proofs := body["proofs"].([]any)
	require.Len(t, proofs, 2)
	first := proofs[0].(map[string]any)
	// No presigner configured: the URL falls back to the raw object key.
	require.Equal(t, first["key"], first["url"])

	w = doRequest(router, http.MethodGet, "/settlements/SET999/proofs", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetExceptionFeedOrder(t *testing.T) {
	h := &DashboardHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/exceptions", h.GetExceptionFeed)

	w := doRequest(router, http.MethodGet, "/exceptions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	feed := body["exceptions"].([]any)
	require.Len(t, feed, 5)

	ids := make([]string, len(feed))
	for i, e := range feed {
		ids[i] = e.(map[string]any)["id"].(string)
	}
	// Critical first, then the highs in input order, medium, and the
	// resolved one last regardless of severity.
	require.Equal(t, []string{"EXC001", "EXC003", "EXC005", "EXC002", "EXC004"}, ids)
	require.Equal(t, float64(4), body["active"])
}

func TestGetStats(t *testing.T) {
	h := &DashboardHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/stats", h.GetStats)

	w := doRequest(router, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(47), body["totalOrders"])
	require.Equal(t, float64(4), body["unplannedOrders"])
	require.Equal(t, float64(1), body["criticalExceptions"])

	split := body["volumeSplit"].(map[string]any)
	require.Equal(t, float64(100), split["ownFleetPercent"].(float64)+split["carrierPercent"].(float64))
}

func TestLogin(t *testing.T) {
	auth.Configure("test-secret", time.Hour)
	h := &UserHandler{Store: seedForTest(t)}
	router := gin.New()
	router.POST("/login", h.Login)

	body, _ := json.Marshal(gin.H{"email": "admin@logicore.example", "password": "controltower"})
	w := doRequest(router, http.MethodPost, "/login", body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	require.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]any)
	require.Equal(t, "admin", user["role"])

	body, _ = json.Marshal(gin.H{"email": "admin@logicore.example", "password": "wrong"})
	w = doRequest(router, http.MethodPost, "/login", body)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body, _ = json.Marshal(gin.H{"email": "admin@logicore.example"})
	w = doRequest(router, http.MethodPost, "/login", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContainersOrderAndDemurrage(t *testing.T) {
	h := &ImportHandler{Store: seedForTest(t)}
	router := gin.New()
	router.GET("/containers", h.ListContainers)

	w := doRequest(router, http.MethodGet, "/containers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	containers := body["containers"].([]any)
	require.Len(t, containers, 3)

	// Most urgent first: IMP003 is at zero free days.
	first := containers[0].(map[string]any)
	require.Equal(t, "IMP003", first["id"])
	require.Equal(t, float64(0), first["demurrageAccrued"])
}
