package service

import (
	"testing"
)

func TestFleetService_Vehicles(t *testing.T) {
	t.Parallel()

	svc := NewFleetService(newFixtureStore())

	tests := []struct {
		name    string
		filter  VehicleFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns the whole fleet in order",
			wantIDs: []string{"v1", "v2", "v3", "v4"},
		},
		{
			name:    "by type",
			filter:  VehicleFilter{Type: "car"},
			wantIDs: []string{"v2", "v3"},
		},
		{
			name:    "type is case and space insensitive",
			filter:  VehicleFilter{Type: "  MOTO "},
			wantIDs: []string{"v1"},
		},
		{
			name:    "by zone",
			filter:  VehicleFilter{Zone: "Rabat"},
			wantIDs: []string{"v3", "v4"},
		},
		{
			name:    "by status",
			filter:  VehicleFilter{Status: "moving"},
			wantIDs: []string{"v1"},
		},
		{
			name:    "filters combine",
			filter:  VehicleFilter{Type: "car", Zone: "Casablanca"},
			wantIDs: []string{"v2"},
		},
		{
			name:    "no match yields empty",
			filter:  VehicleFilter{Type: "truck", Zone: "Casablanca"},
			wantIDs: []string{},
		},
		{
			name:    "unknown enum value matches nothing",
			filter:  VehicleFilter{Status: "teleporting"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := svc.Vehicles(tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("want %d vehicles, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("vehicle %d: want %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFleetService_Vehicle(t *testing.T) {
	t.Parallel()

	svc := NewFleetService(newFixtureStore())

	v, ok := svc.Vehicle("v2")
	if !ok {
		t.Fatal("Vehicle(v2): not found")
	}
	if v.Matricule != "A-2-MA" {
		t.Errorf("Vehicle(v2): wrong record %+v", v)
	}

	// ids arrive from URL paths, surrounding spaces are tolerated
	if _, ok := svc.Vehicle(" v2 "); !ok {
		t.Error("Vehicle with padding: want found")
	}

	if _, ok := svc.Vehicle("v999"); ok {
		t.Error("Vehicle(v999): want absent")
	}
}

func TestFleetService_VehicleChildren(t *testing.T) {
	t.Parallel()

	svc := NewFleetService(newFixtureStore())

	if got := svc.VehicleAlerts("v1"); len(got) != 2 {
		t.Errorf("alerts for v1: want 2, got %d", len(got))
	}
	if got := svc.VehicleMaintenances("v4"); len(got) != 1 {
		t.Errorf("maintenances for v4: want 1, got %d", len(got))
	}
	if got := svc.VehicleFuelEvents("v1"); len(got) != 2 {
		t.Errorf("fuel events for v1: want 2, got %d", len(got))
	}

	// an unknown id reads as a vehicle with no history
	if got := svc.VehicleAlerts("v999"); len(got) != 0 {
		t.Errorf("alerts for unknown vehicle: want none, got %d", len(got))
	}
}

func TestFleetService_Zones(t *testing.T) {
	t.Parallel()

	svc := NewFleetService(newFixtureStore())

	zones := svc.Zones()
	if len(zones) != 2 {
		t.Fatalf("want 2 zones, got %d", len(zones))
	}
	if zones[0].Name != "Casablanca" || zones[1].Name != "Rabat" {
		t.Errorf("zones out of order: %+v", zones)
	}
}
