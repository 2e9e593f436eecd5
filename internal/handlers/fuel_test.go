package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/service"
)

func TestFuelHandlers_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.FuelEvent{
		{ID: "e1", VehicleID: "v1", Type: models.FuelRefill, Amount: 40, Date: now},
		{ID: "e2", VehicleID: "v2", Type: models.FuelRefill, Amount: 25, Date: now.Add(-time.Hour)},
	}
	fuel := &mockFuelLog{resp: events}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		FuelLog:       fuel,
	}
	r := newTestRouter(s)

	// invalid 'from' → 400
	w := perform(r, http.MethodGet, "/api/v1/fuel/events?from=notatime", "valid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid 'from', got %d", w.Code)
	}

	// inverted range → 400 before the service is reached
	w = perform(r, http.MethodGet, "/api/v1/fuel/events?from=2025-06-02&to=2025-06-01", "valid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", w.Code)
	}

	// valid query: filter fields pass through
	q := "/api/v1/fuel/events?from=" + now.Add(-2*time.Hour).Format(time.RFC3339) +
		"&to=" + now.Format(time.RFC3339) + "&type=refill&vehicle_id=%20v1%20"
	w = perform(r, http.MethodGet, q, "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("events status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                `json:"count"`
		Events []models.FuelEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if fuel.lastFilter.Type != "refill" {
		t.Fatalf("type not passed through: %q", fuel.lastFilter.Type)
	}
	if fuel.lastFilter.VehicleID != "v1" {
		t.Fatalf("vehicle id not trimmed: %q", fuel.lastFilter.VehicleID)
	}
	if !fuel.lastFilter.To.Equal(now) {
		t.Fatalf("to bound changed: %v", fuel.lastFilter.To)
	}

	// date-only 'to' becomes end-of-day inclusive
	w = perform(r, http.MethodGet, "/api/v1/fuel/events?to=2025-06-01", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("date-only status=%d", w.Code)
	}
	endOfDay := time.Date(2025, 6, 1, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	if !fuel.lastFilter.To.Equal(endOfDay) {
		t.Fatalf("date-only 'to': got %v, want %v", fuel.lastFilter.To, endOfDay)
	}
}

func TestFuelHandlers_Summary(t *testing.T) {
	fleet, analytics := seedServices()
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Fleet:         fleet,
		Analytics:     analytics,
	}
	r := newTestRouter(s)

	w := perform(r, http.MethodGet, "/api/v1/fuel/summary", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status=%d", w.Code)
	}
	var sum service.FuelSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if sum.TotalRefilled <= 0 {
		t.Fatalf("seed refill volume must be positive: %+v", sum)
	}
}
