package handlers

import (
	"github.com/Nomenandrianina/fleet-master/internal/logger"
	"github.com/Nomenandrianina/fleet-master/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live fleet status feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerFleetRoutes(api)
		h.registerAlertRoutes(api)
		h.registerMaintenanceRoutes(api)
		h.registerFuelRoutes(api)
		h.registerAnalyticsRoutes(api)
		h.registerProfileRoutes(api)
	}
}

func (h *Handler) registerFleetRoutes(api *gin.RouterGroup) {
	fleet := api.Group("/fleet")
	{
		fleet.GET("", h.listVehicles)
		fleet.GET("/status", h.fleetStatus)
		fleet.GET("/composition", h.fleetComposition)
		fleet.GET("/:id", h.getVehicle)
		fleet.GET("/:id/alerts", h.vehicleAlerts)
		fleet.GET("/:id/maintenances", h.vehicleMaintenances)
		fleet.GET("/:id/fuel-events", h.vehicleFuelEvents)
	}
	api.GET("/zones", h.listZones)
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/summary", h.alertSummary)
	}
}

func (h *Handler) registerMaintenanceRoutes(api *gin.RouterGroup) {
	maints := api.Group("/maintenances")
	{
		maints.GET("", h.listMaintenances)
		maints.GET("/summary", h.maintenanceSummary)
	}
}

func (h *Handler) registerFuelRoutes(api *gin.RouterGroup) {
	fuel := api.Group("/fuel")
	{
		fuel.GET("/events", h.listFuelEvents)
		fuel.GET("/summary", h.fuelSummary)
	}
}

func (h *Handler) registerAnalyticsRoutes(api *gin.RouterGroup) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/overview", h.analyticsOverview)
		analytics.GET("/costs", h.analyticsCosts)
		analytics.GET("/anomaly-rate", h.analyticsAnomalyRate)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profile := api.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
	}
}
