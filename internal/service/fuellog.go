package service

import (
	"errors"
	"sort"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
)

type FuelLogService struct {
	fleet repository.FleetRepo
}

func NewFuelLogService(fleet repository.FleetRepo) *FuelLogService {
	return &FuelLogService{fleet: fleet}
}

var _ FuelLog = (*FuelLogService)(nil)

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f FuelFilter) (FuelFilter, error) {
	f.From = normalizeToUTC(f.From)
	f.To = normalizeToUTC(f.To)

	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return FuelFilter{}, errInvalidTimeRange
	}

	f.Type = normalizeEnum(f.Type)
	return f, nil
}

// List returns fuel events matching the filter, newest first. Bounds are
// inclusive.
func (s *FuelLogService) List(f FuelFilter) ([]models.FuelEvent, error) {
	f, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}

	var events []models.FuelEvent
	if f.VehicleID != "" {
		events = s.fleet.FuelEventsForVehicle(f.VehicleID)
	} else {
		events = s.fleet.FuelEvents()
	}

	out := events[:0]
	for _, e := range events {
		if f.Type != "" && string(e.Type) != f.Type {
			continue
		}
		if !f.From.IsZero() && e.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && e.Date.After(f.To) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
