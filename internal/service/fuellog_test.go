package service

import (
	"errors"
	"testing"
	"time"
)

func TestFuelLogService_List(t *testing.T) {
	t.Parallel()

	svc := NewFuelLogService(newFixtureStore())

	tests := []struct {
		name    string
		filter  FuelFilter
		wantIDs []string
		wantErr error
	}{
		{
			name: "no filter, newest first",
			// e3 = 1d ago, e2 = 2d, e1 = 3d, e4 = 5d
			wantIDs: []string{"e3", "e2", "e1", "e4"},
		},
		{
			name:    "by type",
			filter:  FuelFilter{Type: "refill"},
			wantIDs: []string{"e2", "e1"},
		},
		{
			name:    "type normalization",
			filter:  FuelFilter{Type: " Refill "},
			wantIDs: []string{"e2", "e1"},
		},
		{
			name:    "by vehicle",
			filter:  FuelFilter{VehicleID: "v1"},
			wantIDs: []string{"e3", "e1"},
		},
		{
			name:    "from bound is inclusive",
			filter:  FuelFilter{From: fixtureDay(3)},
			wantIDs: []string{"e3", "e2", "e1"},
		},
		{
			name:    "to bound is inclusive",
			filter:  FuelFilter{To: fixtureDay(3)},
			wantIDs: []string{"e1", "e4"},
		},
		{
			name:    "window",
			filter:  FuelFilter{From: fixtureDay(3), To: fixtureDay(2)},
			wantIDs: []string{"e2", "e1"},
		},
		{
			name:    "vehicle and type combine",
			filter:  FuelFilter{VehicleID: "v1", Type: "consumption"},
			wantIDs: []string{"e3"},
		},
		{
			name:    "inverted range rejected",
			filter:  FuelFilter{From: fixtureDay(1), To: fixtureDay(5)},
			wantErr: errInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.List(tt.filter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("want %d events, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("event %d: want %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFuelLogService_List_NonUTCBounds(t *testing.T) {
	t.Parallel()

	svc := NewFuelLogService(newFixtureStore())

	// same instants expressed in a +01:00 offset must select the same rows
	loc := time.FixedZone("WEST", 3600)
	got, err := svc.List(FuelFilter{
		From: fixtureDay(3).In(loc),
		To:   fixtureDay(2).In(loc),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "e2" || got[1].ID != "e1" {
		t.Errorf("offset bounds changed the selection: %+v", got)
	}
}
