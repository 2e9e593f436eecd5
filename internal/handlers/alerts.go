package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List alerts
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, alerts"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/alerts [get]
// @Security     BearerAuth
func (h *Handler) listAlerts(c *gin.Context) {
	alerts := h.services.Fleet.Alerts()
	c.JSON(http.StatusOK, gin.H{"count": len(alerts), "alerts": alerts})
}

// @Summary      Alert summary
// @Description  Histogram by type, resolved/unresolved split, most frequent type.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  service.AlertSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/alerts/summary [get]
// @Security     BearerAuth
func (h *Handler) alertSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.AlertSummary())
}
