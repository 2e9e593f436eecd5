package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/fleetdata"
	"github.com/Nomenandrianina/fleet-master/internal/models"
	dbconn "github.com/Nomenandrianina/fleet-master/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// FleetRepo is the read side over the immutable fleet dataset. Lookups
// report absence with a bool or an empty slice, never an error: the
// store cannot fail once built.
type FleetRepo interface {
	Vehicles() []models.Vehicle
	VehicleByID(id string) (models.Vehicle, bool)
	VehiclesByType(t models.VehicleType) []models.Vehicle
	VehiclesByZone(zoneName string) []models.Vehicle
	VehiclesByStatus(s models.VehicleStatus) []models.Vehicle
	OnlineVehicles() []models.Vehicle
	OfflineVehicles() []models.Vehicle

	Alerts() []models.Alert
	AlertsForVehicle(vehicleID string) []models.Alert
	Maintenances() []models.Maintenance
	MaintenancesForVehicle(vehicleID string) []models.Maintenance
	FuelEvents() []models.FuelEvent
	FuelEventsForVehicle(vehicleID string) []models.FuelEvent

	Zones() []models.Zone
	ZoneByName(name string) (models.Zone, bool)
}

// ProfileRepo persists the single account profile record.
type ProfileRepo interface {
	Load(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, p models.Profile) error
}

type Repository struct {
	Fleet   FleetRepo
	Profile ProfileRepo
	Auth    Authorization
}

// NewRepository builds the fleet store from the seed dataset and wires
// the sqlite-backed repos. The dataset's relative dates are anchored to
// the moment the process starts.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Fleet:   NewFleetStore(fleetdata.New(time.Now().UTC())),
		Profile: NewProfileSQLite(db),
		Auth:    NewUserRepository(db),
	}
}

// InitDB re-exports the sqlite bootstrap so the composition root only
// deals with this package.
func InitDB(path string) (*sql.DB, error) {
	return dbconn.InitDB(path)
}
