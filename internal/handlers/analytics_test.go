package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Nomenandrianina/fleet-master/internal/service"
)

func TestSummaryHandlers_SeedFigures(t *testing.T) {
	fleet, analytics := seedServices()
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Fleet:         fleet,
		Analytics:     analytics,
	}
	r := newTestRouter(s)

	// alert listing and summary agree on totals
	w := perform(r, http.MethodGet, "/api/v1/alerts", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("alerts status=%d", w.Code)
	}
	var list struct {
		Count int `json:"count"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &list)

	w = perform(r, http.MethodGet, "/api/v1/alerts/summary", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("alert summary status=%d", w.Code)
	}
	var alerts service.AlertSummary
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("unmarshal alert summary: %v", err)
	}
	if alerts.Total != list.Count {
		t.Fatalf("summary total %d != listing count %d", alerts.Total, list.Count)
	}
	if alerts.Resolved+alerts.Unresolved != alerts.Total {
		t.Fatalf("alert partition broken: %+v", alerts)
	}
	if alerts.MostFrequent == "" {
		t.Fatal("seed data must yield a most frequent alert type")
	}

	// maintenance summary
	w = perform(r, http.MethodGet, "/api/v1/maintenances/summary", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("maintenance summary status=%d", w.Code)
	}
	var maints service.MaintenanceSummary
	if err := json.Unmarshal(w.Body.Bytes(), &maints); err != nil {
		t.Fatalf("unmarshal maintenance summary: %v", err)
	}
	if maints.Planned+maints.Unplanned != maints.Total {
		t.Fatalf("maintenance partition broken: %+v", maints)
	}
	if maints.TotalCost <= 0 {
		t.Fatalf("seed maintenance cost must be positive: %+v", maints)
	}

	// overview agrees with its parts
	w = perform(r, http.MethodGet, "/api/v1/analytics/overview", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("overview status=%d", w.Code)
	}
	var ov service.Overview
	if err := json.Unmarshal(w.Body.Bytes(), &ov); err != nil {
		t.Fatalf("unmarshal overview: %v", err)
	}

	w = perform(r, http.MethodGet, "/api/v1/analytics/costs", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("costs status=%d", w.Code)
	}
	var costs service.CostSummary
	_ = json.Unmarshal(w.Body.Bytes(), &costs)
	if ov.Costs != costs {
		t.Fatalf("overview costs diverge:\n overview %+v\n costs    %+v", ov.Costs, costs)
	}
	if costs.TotalCost != costs.FuelCost+costs.MaintenanceCost {
		t.Fatalf("cost total broken: %+v", costs)
	}

	w = perform(r, http.MethodGet, "/api/v1/analytics/anomaly-rate", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("anomaly rate status=%d", w.Code)
	}
	var rate service.AnomalyRate
	_ = json.Unmarshal(w.Body.Bytes(), &rate)
	if !rate.Defined {
		t.Fatal("seed anomaly rate must be defined")
	}
	if rate.Percent < 0 || rate.Percent > 100 {
		t.Fatalf("anomaly rate out of range: %v", rate.Percent)
	}
}
