package handlers

import (
	"net/http"

	"github.com/Nomenandrianina/fleet-master/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errVehicleNotFound = "vehicle not found"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString("requestId")}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List fleet vehicles
// @Description  Optional filters combine: type, zone, status must all match.
// @Tags         fleet
// @Produce      json
// @Param        type    query  string  false  "Vehicle type"    Enums(moto,car,truck,other)
// @Param        zone    query  string  false  "Zone name"
// @Param        status  query  string  false  "Vehicle status"  Enums(online,offline,moving,stopped)
// @Success      200  {object}  map[string]interface{}  "count, vehicles"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fleet [get]
// @Security     BearerAuth
func (h *Handler) listVehicles(c *gin.Context) {
	vehicles := h.services.Fleet.Vehicles(service.VehicleFilter{
		Type:   c.Query("type"),
		Zone:   c.Query("zone"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, gin.H{
		"count":    len(vehicles),
		"vehicles": vehicles,
	})
}

// @Summary      Get one vehicle
// @Tags         fleet
// @Produce      json
// @Param        id  path  string  true  "Vehicle id"
// @Success      200  {object}  map[string]interface{}  "vehicle, fuel_percent"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/fleet/{id} [get]
// @Security     BearerAuth
func (h *Handler) getVehicle(c *gin.Context) {
	v, ok := h.services.Fleet.Vehicle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errVehicleNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vehicle":      v,
		"fuel_percent": v.FuelPercent(),
	})
}

// Child collections answer 200 with an empty list for unknown ids: the
// store does not enforce referential integrity, so absence is not an
// error here.

// @Summary      Alerts for a vehicle
// @Tags         fleet
// @Produce      json
// @Param        id  path  string  true  "Vehicle id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fleet/{id}/alerts [get]
// @Security     BearerAuth
func (h *Handler) vehicleAlerts(c *gin.Context) {
	alerts := h.services.Fleet.VehicleAlerts(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"count": len(alerts), "alerts": alerts})
}

// @Summary      Maintenance history for a vehicle
// @Tags         fleet
// @Produce      json
// @Param        id  path  string  true  "Vehicle id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fleet/{id}/maintenances [get]
// @Security     BearerAuth
func (h *Handler) vehicleMaintenances(c *gin.Context) {
	maints := h.services.Fleet.VehicleMaintenances(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"count": len(maints), "maintenances": maints})
}

// @Summary      Fuel events for a vehicle
// @Tags         fleet
// @Produce      json
// @Param        id  path  string  true  "Vehicle id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fleet/{id}/fuel-events [get]
// @Security     BearerAuth
func (h *Handler) vehicleFuelEvents(c *gin.Context) {
	events := h.services.Fleet.VehicleFuelEvents(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}

// @Summary      Fleet status counts
// @Tags         fleet
// @Produce      json
// @Success      200  {object}  service.FleetStatus
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fleet/status [get]
// @Security     BearerAuth
func (h *Handler) fleetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.FleetStatus())
}

// @Summary      Fleet composition by type and zone
// @Tags         fleet
// @Produce      json
// @Success      200  {object}  service.Composition
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fleet/composition [get]
// @Security     BearerAuth
func (h *Handler) fleetComposition(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.Composition())
}

// @Summary      List zones
// @Tags         fleet
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/zones [get]
// @Security     BearerAuth
func (h *Handler) listZones(c *gin.Context) {
	zones := h.services.Fleet.Zones()
	c.JSON(http.StatusOK, gin.H{"count": len(zones), "zones": zones})
}
