package models

import "time"

type FuelEventType string

const (
	FuelRefill      FuelEventType = "refill"
	FuelConsumption FuelEventType = "consumption"
	FuelAnomaly     FuelEventType = "anomaly"
)

// FuelEvent records a change in a vehicle's tank level. Amount is signed:
// positive for refills, negative for consumption and anomalies, so
// NewLevel = PreviousLevel + Amount.
type FuelEvent struct {
	ID            string        `json:"id"`
	VehicleID     string        `json:"vehicle_id"`
	Date          time.Time     `json:"date"`
	Type          FuelEventType `json:"type"`
	Amount        float64       `json:"amount"` // liters, signed
	PreviousLevel float64       `json:"previous_level"`
	NewLevel      float64       `json:"new_level"`
	Odometer      float64       `json:"odometer"`
	Location      string        `json:"location,omitempty"` // station name for refills
}
