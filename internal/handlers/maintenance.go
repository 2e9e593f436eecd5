package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List maintenance records
// @Tags         maintenance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, maintenances"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/maintenances [get]
// @Security     BearerAuth
func (h *Handler) listMaintenances(c *gin.Context) {
	maints := h.services.Fleet.Maintenances()
	c.JSON(http.StatusOK, gin.H{"count": len(maints), "maintenances": maints})
}

// @Summary      Maintenance summary
// @Description  Planned/unplanned split, upcoming count, total cost.
// @Tags         maintenance
// @Produce      json
// @Success      200  {object}  service.MaintenanceSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/maintenances/summary [get]
// @Security     BearerAuth
func (h *Handler) maintenanceSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.MaintenanceSummary())
}
