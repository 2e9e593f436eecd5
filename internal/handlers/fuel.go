package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List fuel events
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'), event type and vehicle. If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         fuel
// @Produce      json
// @Param        from        query  string  false  "Start of range"  example(2025-08-01)
// @Param        to          query  string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        type        query  string  false  "Event type"  Enums(refill,consumption,anomaly)
// @Param        vehicle_id  query  string  false  "Vehicle id"
// @Success      200  {object}  map[string]interface{}  "count, events"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fuel/events [get]
// @Security     BearerAuth
func (h *Handler) listFuelEvents(c *gin.Context) {
	var (
		from time.Time
		to   time.Time
		err  error
	)
	// Parse 'from' (optional)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	// Parse 'to' (optional). If only a date is provided, make it end-of-day inclusive.
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	// Validate range if both provided
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}
	events, err := h.services.FuelLog.List(service.FuelFilter{
		From:      from,
		To:        to,
		Type:      c.Query("type"),
		VehicleID: strings.TrimSpace(c.Query("vehicle_id")),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

// @Summary      Fuel summary
// @Description  Refill volume total, anomaly count, fleet average consumption.
// @Tags         fuel
// @Produce      json
// @Success      200  {object}  service.FuelSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/fuel/summary [get]
// @Security     BearerAuth
func (h *Handler) fuelSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Analytics.FuelSummary())
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
