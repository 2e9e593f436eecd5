package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Analytics overview
// @Description  Fleet status, operating costs, anomaly rate and average consumption in one block.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  service.Overview
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/analytics/overview [get]
// @Security     BearerAuth
func (h *Handler) analyticsOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.Overview())
}

// @Summary      Operating cost summary
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  service.CostSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/analytics/costs [get]
// @Security     BearerAuth
func (h *Handler) analyticsCosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.CostSummary())
}

// @Summary      Fuel anomaly rate
// @Description  Share of fuel-anomaly alerts among all alerts. Reported as undefined when there are no alerts.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  service.AnomalyRate
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/analytics/anomaly-rate [get]
// @Security     BearerAuth
func (h *Handler) analyticsAnomalyRate(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.AnomalyRate())
}
