package models

import "time"

type AlertType string

const (
	AlertFuelAnomaly   AlertType = "fuel_anomaly"
	AlertGPSDisconnect AlertType = "gps_disconnect"
	AlertOverspeed     AlertType = "overspeed"
	AlertProlongedStop AlertType = "prolonged_stop"
	AlertGeofenceExit  AlertType = "geofence_exit"
)

// AlertTypes lists all alert types in their canonical order. Histograms
// iterate this order and ties in "most frequent" resolve to the earlier
// entry.
var AlertTypes = []AlertType{
	AlertFuelAnomaly,
	AlertGPSDisconnect,
	AlertOverspeed,
	AlertProlongedStop,
	AlertGeofenceExit,
}

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// Alert is a fleet incident raised against a vehicle.
type Alert struct {
	ID        string        `json:"id"`
	VehicleID string        `json:"vehicle_id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Date      time.Time     `json:"date"`
	Resolved  bool          `json:"resolved"`
	Details   string        `json:"details,omitempty"`
}
