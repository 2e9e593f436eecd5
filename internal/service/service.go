package service

import (
	"context"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/logger"
	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Fleet exposes read-only vehicle lookups. The store is in-memory and
// immutable, so these never fail: absence is a bool or an empty slice.
type Fleet interface {
	Vehicles(f VehicleFilter) []models.Vehicle
	Vehicle(id string) (models.Vehicle, bool)
	VehicleAlerts(id string) []models.Alert
	VehicleMaintenances(id string) []models.Maintenance
	VehicleFuelEvents(id string) []models.FuelEvent
	Alerts() []models.Alert
	Maintenances() []models.Maintenance
	Zones() []models.Zone
}

// FuelLog exposes the fuel event history with filtering access.
type FuelLog interface {
	List(f FuelFilter) ([]models.FuelEvent, error)
}

// Analytics computes derived fleet statistics. Stateless: every call is
// a fresh pass over the store.
type Analytics interface {
	FleetStatus() FleetStatus
	Composition() Composition
	AlertSummary() AlertSummary
	MaintenanceSummary() MaintenanceSummary
	FuelSummary() FuelSummary
	CostSummary() CostSummary
	AnomalyRate() AnomalyRate
	Overview() Overview
}

// Profile reads and replaces the single account profile record.
type Profile interface {
	Load(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, p models.Profile) error
}

// Monitor runs the background loop that periodically logs a fleet
// status snapshot. Stop via context cancellation in main() for
// graceful shutdown.
type Monitor interface {
	Run(ctx context.Context, tick time.Duration)
}

// Config carries the tunables services need from the composition root.
type Config struct {
	FuelUnitPrice float64       // MAD per liter for refill cost totals
	JWTSigningKey string        // HS256 key for auth tokens
	JWTTokenTTL   time.Duration // token lifetime
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Fleet
	FuelLog
	Analytics
	Profile
	Monitor
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	analytics := NewAnalyticsService(repos.Fleet, cfg.FuelUnitPrice)
	return &Service{
		Fleet:         NewFleetService(repos.Fleet),
		FuelLog:       NewFuelLogService(repos.Fleet),
		Analytics:     analytics,
		Profile:       NewProfileService(repos.Profile),
		Monitor:       NewMonitorService(analytics, log),
		Authorization: NewAuthService(repos.Auth, cfg.JWTSigningKey, cfg.JWTTokenTTL),
	}
}
