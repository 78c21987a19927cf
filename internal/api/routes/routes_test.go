package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logicore-tms-api-server/config"
	"logicore-tms-api-server/internal/auth"
	"logicore-tms-api-server/internal/socket"
	"logicore-tms-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.Configure("test-secret", time.Hour)

	snap, err := store.SeedDemo(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return SetupRouter(config.Config{}, snap, nil, socket.NewHub())
}

func get(router *gin.Engine, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/api/v1/dashboard/stats", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(router, "/api/v1/finance/settlements", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViewerCanReadOperationalViews(t *testing.T) {
	router := setupTestRouter(t)

	token, err := auth.GenerateJWT("viewer@logicore.example", "Warehouse TV", "viewer")
	require.NoError(t, err)

	for _, target := range []string{
		"/api/v1/dashboard/stats",
		"/api/v1/dashboard/exceptions",
		"/api/v1/dashboard/volume-split",
		"/api/v1/dashboard/activity",
		"/api/v1/orders/",
		"/api/v1/orders/ORD-78341",
		"/api/v1/drivers",
		"/api/v1/fleet/trucks",
		"/api/v1/routes/",
		"/api/v1/routes/RTE001",
		"/api/v1/imports/containers",
		"/api/v1/carriers/shipments",
		"/api/v1/assets/rti",
	} {
		w := get(router, target, token)
		require.Equal(t, http.StatusOK, w.Code, "GET %s", target)
	}
}

func TestFinanceRoutesExcludeViewer(t *testing.T) {
	router := setupTestRouter(t)

	viewer, err := auth.GenerateJWT("viewer@logicore.example", "Warehouse TV", "viewer")
	require.NoError(t, err)
	dispatcher, err := auth.GenerateJWT("dispatch@logicore.example", "Dispatch Desk", "dispatcher")
	require.NoError(t, err)

	for _, target := range []string{
		"/api/v1/finance/settlements",
		"/api/v1/finance/settlements/SET001/proofs",
		"/api/v1/finance/customers",
	} {
		w := get(router, target, viewer)
		require.Equal(t, http.StatusForbidden, w.Code, "GET %s", target)

		w = get(router, target, dispatcher)
		require.Equal(t, http.StatusOK, w.Code, "GET %s", target)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/api/v1/dashboard/stats", "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
