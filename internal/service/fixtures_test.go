package service

import (
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/fleetdata"
	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
)

// fixtureNow anchors every test date so ordering assertions stay stable.
var fixtureNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixtureDay(daysAgo int) time.Time {
	return fixtureNow.AddDate(0, 0, -daysAgo)
}

// newFixtureStore builds a small hand-picked fleet: four vehicles across
// two zones covering all four statuses, four fuel events, four alerts
// and three maintenances. The derived figures are easy to verify by
// hand.
func newFixtureStore() *repository.FleetStore {
	return repository.NewFleetStore(fleetdata.Dataset{
		Zones: []models.Zone{
			{ID: "z1", Name: "Casablanca", Color: "#ff0000"},
			{ID: "z2", Name: "Rabat", Color: "#00ff00"},
		},
		Vehicles: []models.Vehicle{
			{ID: "v1", Matricule: "A-1-MA", Type: models.TypeMoto, Status: models.StatusMoving, Zone: "Casablanca", FuelCapacity: 18, CurrentFuelLevel: 12, AvgConsumption: 4},
			{ID: "v2", Matricule: "A-2-MA", Type: models.TypeCar, Status: models.StatusOnline, Zone: "Casablanca", FuelCapacity: 50, CurrentFuelLevel: 30, AvgConsumption: 6},
			{ID: "v3", Matricule: "A-3-MA", Type: models.TypeCar, Status: models.StatusOffline, Zone: "Rabat", FuelCapacity: 50, CurrentFuelLevel: 10, AvgConsumption: 8},
			{ID: "v4", Matricule: "A-4-MA", Type: models.TypeTruck, Status: models.StatusStopped, Zone: "Rabat", FuelCapacity: 200, CurrentFuelLevel: 150, AvgConsumption: 30},
		},
		FuelEvents: []models.FuelEvent{
			{ID: "e1", VehicleID: "v1", Type: models.FuelRefill, Amount: 10, PreviousLevel: 2, NewLevel: 12, Date: fixtureDay(3)},
			{ID: "e2", VehicleID: "v2", Type: models.FuelRefill, Amount: 20, PreviousLevel: 10, NewLevel: 30, Date: fixtureDay(2)},
			{ID: "e3", VehicleID: "v1", Type: models.FuelConsumption, Amount: -5, PreviousLevel: 17, NewLevel: 12, Date: fixtureDay(1)},
			{ID: "e4", VehicleID: "v3", Type: models.FuelAnomaly, Amount: -8, PreviousLevel: 18, NewLevel: 10, Date: fixtureDay(5)},
		},
		Alerts: []models.Alert{
			{ID: "a1", VehicleID: "v3", Type: models.AlertFuelAnomaly, Severity: models.SeverityHigh, Date: fixtureDay(5)},
			{ID: "a2", VehicleID: "v1", Type: models.AlertOverspeed, Severity: models.SeverityMedium, Date: fixtureDay(4), Resolved: true},
			{ID: "a3", VehicleID: "v1", Type: models.AlertOverspeed, Severity: models.SeverityLow, Date: fixtureDay(2)},
			{ID: "a4", VehicleID: "v4", Type: models.AlertGPSDisconnect, Severity: models.SeverityHigh, Date: fixtureDay(1)},
		},
		Maintenances: []models.Maintenance{
			{ID: "m1", VehicleID: "v2", Type: models.MaintOilChange, Status: models.MaintPlanned, PlannedDate: fixtureDay(-7), Cost: 100, IsPlanned: true},
			{ID: "m2", VehicleID: "v3", Type: models.MaintRepair, Status: models.MaintCompleted, PlannedDate: fixtureDay(10), CompletedDate: fixtureDay(9), Cost: 200, IsPlanned: false},
			{ID: "m3", VehicleID: "v4", Type: models.MaintBrakeService, Status: models.MaintInProgress, PlannedDate: fixtureDay(1), Cost: 300, IsPlanned: true},
		},
	})
}

// newEmptyStore has no entities at all, for the degenerate aggregations.
func newEmptyStore() *repository.FleetStore {
	return repository.NewFleetStore(fleetdata.Dataset{})
}
