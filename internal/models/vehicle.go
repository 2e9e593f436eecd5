package models

import (
	"math"
	"time"
)

// Vehicle classification.
type VehicleType string

const (
	TypeMoto  VehicleType = "moto"
	TypeCar   VehicleType = "car"
	TypeTruck VehicleType = "truck"
	TypeOther VehicleType = "other"
)

// VehicleTypes lists all types in their canonical order.
// Composition buckets follow this order.
var VehicleTypes = []VehicleType{TypeMoto, TypeCar, TypeTruck, TypeOther}

// Live tracker state. "moving" implies the tracker is reachable, so the
// online fleet is {online, moving}; "stopped" vehicles report a position
// but are neither online nor offline in the 2-way view.
type VehicleStatus string

const (
	StatusOnline  VehicleStatus = "online"
	StatusOffline VehicleStatus = "offline"
	StatusMoving  VehicleStatus = "moving"
	StatusStopped VehicleStatus = "stopped"
)

type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelGasoline FuelType = "gasoline"
)

// Position is a GPS fix.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Vehicle is a tracked fleet unit.
type Vehicle struct {
	ID               string        `json:"id"`
	Matricule        string        `json:"matricule"` // plate number, unique
	Type             VehicleType   `json:"type"`
	Brand            string        `json:"brand"`
	Model            string        `json:"model"`
	FuelType         FuelType      `json:"fuel_type"`
	FuelCapacity     float64       `json:"fuel_capacity"`      // liters, > 0
	CurrentFuelLevel float64       `json:"current_fuel_level"` // liters, [0, FuelCapacity]
	Odometer         float64       `json:"odometer"`           // km
	TotalDistance    float64       `json:"total_distance"`     // km
	AvgConsumption   float64       `json:"avg_consumption"`    // L/100km
	Status           VehicleStatus `json:"status"`
	LastOnline       time.Time     `json:"last_online"`
	GPSInstallDate   time.Time     `json:"gps_install_date"`
	Zone             string        `json:"zone"` // Zone name, not id
	Position         Position      `json:"position"`
	Driver           string        `json:"driver,omitempty"`
}

// FuelPercent returns the tank fill level as a percentage rounded to one
// decimal place. Zero-capacity vehicles report 0 rather than dividing.
func (v Vehicle) FuelPercent() float64 {
	if v.FuelCapacity <= 0 {
		return 0
	}
	return math.Round(v.CurrentFuelLevel/v.FuelCapacity*1000) / 10
}
