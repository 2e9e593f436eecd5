package service

import (
	"strings"

	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
)

type FleetService struct {
	fleet repository.FleetRepo
}

func NewFleetService(fleet repository.FleetRepo) *FleetService {
	return &FleetService{fleet: fleet}
}

var _ Fleet = (*FleetService)(nil)

// Vehicles lists the fleet, narrowed by every set filter field. Result
// order is the store's insertion order.
func (s *FleetService) Vehicles(f VehicleFilter) []models.Vehicle {
	typ := models.VehicleType(normalizeEnum(f.Type))
	status := models.VehicleStatus(normalizeEnum(f.Status))
	zone := strings.TrimSpace(f.Zone)

	out := s.fleet.Vehicles()
	if typ != "" {
		out = keepVehicles(out, func(v models.Vehicle) bool { return v.Type == typ })
	}
	if status != "" {
		out = keepVehicles(out, func(v models.Vehicle) bool { return v.Status == status })
	}
	if zone != "" {
		out = keepVehicles(out, func(v models.Vehicle) bool { return v.Zone == zone })
	}
	return out
}

func (s *FleetService) Vehicle(id string) (models.Vehicle, bool) {
	return s.fleet.VehicleByID(strings.TrimSpace(id))
}

// Child lookups tolerate unknown vehicle ids: an id with no match yields
// an empty slice, same as a vehicle with no history.
func (s *FleetService) VehicleAlerts(id string) []models.Alert {
	return s.fleet.AlertsForVehicle(strings.TrimSpace(id))
}

func (s *FleetService) VehicleMaintenances(id string) []models.Maintenance {
	return s.fleet.MaintenancesForVehicle(strings.TrimSpace(id))
}

func (s *FleetService) VehicleFuelEvents(id string) []models.FuelEvent {
	return s.fleet.FuelEventsForVehicle(strings.TrimSpace(id))
}

func (s *FleetService) Alerts() []models.Alert {
	return s.fleet.Alerts()
}

func (s *FleetService) Maintenances() []models.Maintenance {
	return s.fleet.Maintenances()
}

func (s *FleetService) Zones() []models.Zone {
	return s.fleet.Zones()
}

// normalizeEnum trims spaces and lowercases an enum-valued filter field.
func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func keepVehicles(in []models.Vehicle, keep func(models.Vehicle) bool) []models.Vehicle {
	out := in[:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
