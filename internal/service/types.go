package service

import (
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/models"
)

// VehicleFilter narrows the fleet listing. Empty fields match everything;
// set fields must all match. Values are normalized (trimmed, lowercased)
// before matching, and an unknown value simply matches nothing.
type VehicleFilter struct {
	Type   string // "moto" | "car" | "truck" | "other"
	Zone   string // zone name, matched as-is (zones are proper names)
	Status string // "online" | "offline" | "moving" | "stopped"
}

// FuelFilter supports fuel history filtering by time range, event type
// and vehicle.
type FuelFilter struct {
	From      time.Time // inclusive; zero means no lower bound
	To        time.Time // inclusive; zero means no upper bound
	Type      string    // "", "refill", "consumption", "anomaly"
	VehicleID string    // "" means all vehicles
}

// FleetStatus carries both the 2-way (online/offline) and the 4-way
// status breakdown. The views do not sum to Total: moving vehicles are
// part of Online, and stopped vehicles belong to neither side of the
// 2-way split.
type FleetStatus struct {
	Total   int `json:"total"`
	Online  int `json:"online"`
	Offline int `json:"offline"`
	Moving  int `json:"moving"`
	Stopped int `json:"stopped"`
}

// AlertTypeCount is one histogram bucket. Buckets follow the canonical
// alert type order.
type AlertTypeCount struct {
	Type  models.AlertType `json:"type"`
	Count int              `json:"count"`
}

type AlertSummary struct {
	Total        int              `json:"total"`
	Unresolved   int              `json:"unresolved"`
	Resolved     int              `json:"resolved"`
	ByType       []AlertTypeCount `json:"by_type"`
	MostFrequent models.AlertType `json:"most_frequent,omitempty"` // empty when there are no alerts
}

type MaintenanceSummary struct {
	Total     int     `json:"total"`
	Planned   int     `json:"planned"`   // IsPlanned == true
	Unplanned int     `json:"unplanned"` // reactive work
	Upcoming  int     `json:"upcoming"`  // Status == planned
	TotalCost float64 `json:"total_cost"`
}

type FuelSummary struct {
	TotalRefilled  float64 `json:"total_refilled"`  // liters added across refills
	Anomalies      int     `json:"anomalies"`       // anomaly fuel events
	AvgConsumption float64 `json:"avg_consumption"` // fleet mean, L/100km, one decimal
}

type CostSummary struct {
	FuelUnitPrice   float64 `json:"fuel_unit_price"` // MAD/L
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
}

// AnomalyRate is the share of fuel-anomaly alerts among all alerts, as a
// percentage rounded to one decimal. Defined is false when there are no
// alerts at all; Percent is 0 then, never NaN.
type AnomalyRate struct {
	Percent float64 `json:"percent"`
	Defined bool    `json:"defined"`
}

type TypeCount struct {
	Type  models.VehicleType `json:"type"`
	Count int                `json:"count"`
}

// ZoneCount is a per-zone vehicle tally. Color comes from the zone list
// when the name resolves; an unknown zone name keeps an empty color.
type ZoneCount struct {
	Zone  string `json:"zone"`
	Color string `json:"color,omitempty"`
	Count int    `json:"count"`
}

type Composition struct {
	ByType []TypeCount `json:"by_type"`
	ByZone []ZoneCount `json:"by_zone"`
}

// Overview is the analytics dashboard header block.
type Overview struct {
	Status         FleetStatus `json:"status"`
	Costs          CostSummary `json:"costs"`
	AnomalyRate    AnomalyRate `json:"anomaly_rate"`
	AvgConsumption float64     `json:"avg_consumption"`
}
