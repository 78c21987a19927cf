package routes

import (
	"logicore-tms-api-server/config"
	"logicore-tms-api-server/internal/api/handlers"
	"logicore-tms-api-server/internal/api/middleware"
	"logicore-tms-api-server/internal/s3"
	"logicore-tms-api-server/internal/socket"
	"logicore-tms-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the handlers over the snapshot and returns the engine.
func SetupRouter(
	cfg config.Config,
	snap *store.Snapshot,
	presigner *s3.Presigner,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	if len(cfg.CORS.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	userHandler := &handlers.UserHandler{Store: snap}
	dashboardHandler := &handlers.DashboardHandler{Store: snap}
	orderHandler := &handlers.OrderHandler{Store: snap}
	driverHandler := &handlers.DriverHandler{Store: snap}
	fleetHandler := &handlers.FleetHandler{Store: snap}
	routeHandler := &handlers.RouteHandler{Store: snap}
	importHandler := &handlers.ImportHandler{Store: snap}
	carrierHandler := &handlers.CarrierHandler{Store: snap}
	financeHandler := &handlers.FinanceHandler{Store: snap, Presigner: presigner}
	assetHandler := &handlers.AssetHandler{Store: snap}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		// Live stats feed; the token rides in the query string.
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// Everything below requires a valid token. All three roles can read
		// the operational views.
		businessRoutes := apiV1.Group("/")
		businessRoutes.Use(middleware.Authenticate())
		businessRoutes.Use(middleware.Authorize("admin", "dispatcher", "viewer"))
		{
			dashboard := businessRoutes.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.GetStats)
				dashboard.GET("/exceptions", dashboardHandler.GetExceptionFeed)
				dashboard.GET("/volume-split", dashboardHandler.GetVolumeSplit)
				dashboard.GET("/activity", dashboardHandler.GetActivity)
			}

			orders := businessRoutes.Group("/orders")
			{
				orders.GET("/", orderHandler.ListOrders)
				orders.GET("/:id", orderHandler.GetOrder)
			}

			businessRoutes.GET("/drivers", driverHandler.ListDrivers)
			businessRoutes.GET("/fleet/trucks", fleetHandler.ListTrucks)

			routeGroup := businessRoutes.Group("/routes")
			{
				routeGroup.GET("/", routeHandler.ListRoutes)
				routeGroup.GET("/:id", routeHandler.GetRoute)
			}

			businessRoutes.GET("/imports/containers", importHandler.ListContainers)
			businessRoutes.GET("/carriers/shipments", carrierHandler.ListShipments)
			businessRoutes.GET("/assets/rti", assetHandler.ListRTIAssets)
		}

		// Money views are for admins and dispatchers only.
		finance := apiV1.Group("/finance")
		finance.Use(middleware.Authenticate())
		finance.Use(middleware.Authorize("admin", "dispatcher"))
		{
			finance.GET("/settlements", financeHandler.ListSettlements)
			finance.GET("/settlements/:id/proofs", financeHandler.GetSettlementProofs)
			finance.GET("/customers", financeHandler.ListCustomers)
		}
	}

	return router
}
