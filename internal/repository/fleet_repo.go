package repository

import (
	"github.com/Nomenandrianina/fleet-master/internal/fleetdata"
	"github.com/Nomenandrianina/fleet-master/internal/models"
)

// FleetStore is the in-memory entity store. It is populated once from a
// dataset and never written afterwards; every accessor hands out copies
// so callers cannot reach the backing slices. Filter results keep the
// dataset's insertion order.
type FleetStore struct {
	vehicles     []models.Vehicle
	alerts       []models.Alert
	maintenances []models.Maintenance
	fuelEvents   []models.FuelEvent
	zones        []models.Zone

	vehicleIdx map[string]int
	zoneIdx    map[string]int // keyed by name; vehicles join zones by name

	alertsByVehicle map[string][]int
	maintsByVehicle map[string][]int
	fuelByVehicle   map[string][]int
}

var _ FleetRepo = (*FleetStore)(nil)

// NewFleetStore indexes the dataset for id and foreign-key lookups.
func NewFleetStore(ds fleetdata.Dataset) *FleetStore {
	s := &FleetStore{
		vehicles:        ds.Vehicles,
		alerts:          ds.Alerts,
		maintenances:    ds.Maintenances,
		fuelEvents:      ds.FuelEvents,
		zones:           ds.Zones,
		vehicleIdx:      make(map[string]int, len(ds.Vehicles)),
		zoneIdx:         make(map[string]int, len(ds.Zones)),
		alertsByVehicle: make(map[string][]int),
		maintsByVehicle: make(map[string][]int),
		fuelByVehicle:   make(map[string][]int),
	}
	for i, v := range ds.Vehicles {
		s.vehicleIdx[v.ID] = i
	}
	for i, z := range ds.Zones {
		s.zoneIdx[z.Name] = i
	}
	for i, a := range ds.Alerts {
		s.alertsByVehicle[a.VehicleID] = append(s.alertsByVehicle[a.VehicleID], i)
	}
	for i, m := range ds.Maintenances {
		s.maintsByVehicle[m.VehicleID] = append(s.maintsByVehicle[m.VehicleID], i)
	}
	for i, e := range ds.FuelEvents {
		s.fuelByVehicle[e.VehicleID] = append(s.fuelByVehicle[e.VehicleID], i)
	}
	return s
}

func (s *FleetStore) Vehicles() []models.Vehicle {
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

func (s *FleetStore) VehicleByID(id string) (models.Vehicle, bool) {
	i, ok := s.vehicleIdx[id]
	if !ok {
		return models.Vehicle{}, false
	}
	return s.vehicles[i], true
}

func (s *FleetStore) VehiclesByType(t models.VehicleType) []models.Vehicle {
	return s.filterVehicles(func(v models.Vehicle) bool { return v.Type == t })
}

func (s *FleetStore) VehiclesByZone(zoneName string) []models.Vehicle {
	return s.filterVehicles(func(v models.Vehicle) bool { return v.Zone == zoneName })
}

func (s *FleetStore) VehiclesByStatus(st models.VehicleStatus) []models.Vehicle {
	return s.filterVehicles(func(v models.Vehicle) bool { return v.Status == st })
}

// OnlineVehicles returns vehicles whose tracker is reachable: status
// online or moving.
func (s *FleetStore) OnlineVehicles() []models.Vehicle {
	return s.filterVehicles(func(v models.Vehicle) bool {
		return v.Status == models.StatusOnline || v.Status == models.StatusMoving
	})
}

func (s *FleetStore) OfflineVehicles() []models.Vehicle {
	return s.filterVehicles(func(v models.Vehicle) bool { return v.Status == models.StatusOffline })
}

func (s *FleetStore) Alerts() []models.Alert {
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *FleetStore) AlertsForVehicle(vehicleID string) []models.Alert {
	idx := s.alertsByVehicle[vehicleID]
	out := make([]models.Alert, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.alerts[i])
	}
	return out
}

func (s *FleetStore) Maintenances() []models.Maintenance {
	out := make([]models.Maintenance, len(s.maintenances))
	copy(out, s.maintenances)
	return out
}

func (s *FleetStore) MaintenancesForVehicle(vehicleID string) []models.Maintenance {
	idx := s.maintsByVehicle[vehicleID]
	out := make([]models.Maintenance, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.maintenances[i])
	}
	return out
}

func (s *FleetStore) FuelEvents() []models.FuelEvent {
	out := make([]models.FuelEvent, len(s.fuelEvents))
	copy(out, s.fuelEvents)
	return out
}

func (s *FleetStore) FuelEventsForVehicle(vehicleID string) []models.FuelEvent {
	idx := s.fuelByVehicle[vehicleID]
	out := make([]models.FuelEvent, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.fuelEvents[i])
	}
	return out
}

func (s *FleetStore) Zones() []models.Zone {
	out := make([]models.Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

func (s *FleetStore) ZoneByName(name string) (models.Zone, bool) {
	i, ok := s.zoneIdx[name]
	if !ok {
		return models.Zone{}, false
	}
	return s.zones[i], true
}

func (s *FleetStore) filterVehicles(keep func(models.Vehicle) bool) []models.Vehicle {
	out := make([]models.Vehicle, 0)
	for _, v := range s.vehicles {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
