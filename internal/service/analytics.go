package service

import (
	"math"

	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
)

// DefaultFuelUnitPrice is the refill price used when config leaves it
// unset, in MAD per liter.
const DefaultFuelUnitPrice = 12.0

// AnalyticsService derives summary statistics from the fleet store.
// It holds no state of its own beyond the price knob: the store never
// changes, so every figure is recomputed on demand.
type AnalyticsService struct {
	fleet         repository.FleetRepo
	fuelUnitPrice float64
}

func NewAnalyticsService(fleet repository.FleetRepo, fuelUnitPrice float64) *AnalyticsService {
	if fuelUnitPrice <= 0 {
		fuelUnitPrice = DefaultFuelUnitPrice
	}
	return &AnalyticsService{fleet: fleet, fuelUnitPrice: fuelUnitPrice}
}

var _ Analytics = (*AnalyticsService)(nil)

// FleetStatus counts both status views. Online is the union of the
// online and moving statuses; the 4-way counts are raw per-status
// tallies.
func (s *AnalyticsService) FleetStatus() FleetStatus {
	vehicles := s.fleet.Vehicles()
	st := FleetStatus{Total: len(vehicles)}
	for _, v := range vehicles {
		switch v.Status {
		case models.StatusOnline:
			st.Online++
		case models.StatusMoving:
			st.Online++
			st.Moving++
		case models.StatusOffline:
			st.Offline++
		case models.StatusStopped:
			st.Stopped++
		}
	}
	return st
}

// Composition tallies vehicles by type (fixed four buckets, exhaustive
// and disjoint) and by zone. Zone buckets are the distinct zone names
// present in the fleet, in first-encounter order, joined against the
// zone list for the display color. The join is by name; an unknown name
// still gets a bucket, just without a color.
func (s *AnalyticsService) Composition() Composition {
	vehicles := s.fleet.Vehicles()

	byType := make([]TypeCount, 0, len(models.VehicleTypes))
	for _, t := range models.VehicleTypes {
		n := 0
		for _, v := range vehicles {
			if v.Type == t {
				n++
			}
		}
		byType = append(byType, TypeCount{Type: t, Count: n})
	}

	var byZone []ZoneCount
	zonePos := make(map[string]int)
	for _, v := range vehicles {
		i, seen := zonePos[v.Zone]
		if !seen {
			zc := ZoneCount{Zone: v.Zone}
			if z, ok := s.fleet.ZoneByName(v.Zone); ok {
				zc.Color = z.Color
			}
			zonePos[v.Zone] = len(byZone)
			byZone = append(byZone, zc)
			i = zonePos[v.Zone]
		}
		byZone[i].Count++
	}

	return Composition{ByType: byType, ByZone: byZone}
}

// AlertSummary partitions alerts by resolution and histograms them over
// the fixed five-type enumeration. The most frequent type is the first
// maximum in enumeration order, which also settles ties.
func (s *AnalyticsService) AlertSummary() AlertSummary {
	alerts := s.fleet.Alerts()

	sum := AlertSummary{Total: len(alerts)}
	for _, a := range alerts {
		if !a.Resolved {
			sum.Unresolved++
		}
	}
	sum.Resolved = sum.Total - sum.Unresolved

	counts := make(map[models.AlertType]int, len(models.AlertTypes))
	for _, a := range alerts {
		counts[a.Type]++
	}
	sum.ByType = make([]AlertTypeCount, 0, len(models.AlertTypes))
	best := -1
	for _, t := range models.AlertTypes {
		n := counts[t]
		sum.ByType = append(sum.ByType, AlertTypeCount{Type: t, Count: n})
		if n > best {
			best = n
			sum.MostFrequent = t
		}
	}
	if sum.Total == 0 {
		sum.MostFrequent = ""
	}
	return sum
}

func (s *AnalyticsService) MaintenanceSummary() MaintenanceSummary {
	maints := s.fleet.Maintenances()

	sum := MaintenanceSummary{Total: len(maints)}
	for _, m := range maints {
		if m.IsPlanned {
			sum.Planned++
		} else {
			sum.Unplanned++
		}
		if m.Status == models.MaintPlanned {
			sum.Upcoming++
		}
		sum.TotalCost += m.Cost
	}
	return sum
}

// FuelSummary totals refill volume, counts anomaly events and averages
// the per-vehicle consumption figure. The mean is unweighted; an empty
// fleet reports 0 rather than dividing.
func (s *AnalyticsService) FuelSummary() FuelSummary {
	sum := FuelSummary{}
	for _, e := range s.fleet.FuelEvents() {
		switch e.Type {
		case models.FuelRefill:
			sum.TotalRefilled += e.Amount
		case models.FuelAnomaly:
			sum.Anomalies++
		}
	}
	sum.AvgConsumption = s.avgConsumption()
	return sum
}

// CostSummary combines refill spend (liters added times the unit price)
// with the full maintenance cost into one operating figure.
func (s *AnalyticsService) CostSummary() CostSummary {
	sum := CostSummary{FuelUnitPrice: s.fuelUnitPrice}
	for _, e := range s.fleet.FuelEvents() {
		if e.Type == models.FuelRefill {
			sum.FuelCost += e.Amount * s.fuelUnitPrice
		}
	}
	for _, m := range s.fleet.Maintenances() {
		sum.MaintenanceCost += m.Cost
	}
	sum.TotalCost = sum.FuelCost + sum.MaintenanceCost
	return sum
}

// AnomalyRate reports fuel-anomaly alerts as a share of all alerts.
// With zero alerts the rate is explicitly undefined instead of NaN.
func (s *AnalyticsService) AnomalyRate() AnomalyRate {
	alerts := s.fleet.Alerts()
	if len(alerts) == 0 {
		return AnomalyRate{}
	}
	anomalies := 0
	for _, a := range alerts {
		if a.Type == models.AlertFuelAnomaly {
			anomalies++
		}
	}
	return AnomalyRate{
		Percent: round1(float64(anomalies) / float64(len(alerts)) * 100),
		Defined: true,
	}
}

func (s *AnalyticsService) Overview() Overview {
	return Overview{
		Status:         s.FleetStatus(),
		Costs:          s.CostSummary(),
		AnomalyRate:    s.AnomalyRate(),
		AvgConsumption: s.avgConsumption(),
	}
}

func (s *AnalyticsService) avgConsumption() float64 {
	vehicles := s.fleet.Vehicles()
	if len(vehicles) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range vehicles {
		total += v.AvgConsumption
	}
	return round1(total / float64(len(vehicles)))
}

// round1 rounds to one decimal place, the precision every dashboard
// figure is reported at.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
