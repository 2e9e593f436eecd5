// Package fleetdata holds the seed dataset the fleet store is built from.
// Construction is deterministic: the same reference instant always
// produces the same dataset.
package fleetdata

import (
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/models"
)

// Dataset is one full snapshot of every entity collection.
type Dataset struct {
	Zones        []models.Zone
	Vehicles     []models.Vehicle
	FuelEvents   []models.FuelEvent
	Alerts       []models.Alert
	Maintenances []models.Maintenance
}

// New builds the seed dataset with all relative dates anchored to now.
// A negative day count means a future date (planned maintenance).
func New(now time.Time) Dataset {
	daysAgo := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	hoursAgo := func(hours int) time.Time { return now.Add(-time.Duration(hours) * time.Hour) }

	ds := Dataset{
		Zones: []models.Zone{
			{ID: "z1", Name: "Casablanca", Color: "#3B82F6"},
			{ID: "z2", Name: "Rabat", Color: "#8B5CF6"},
			{ID: "z3", Name: "Marrakech", Color: "#F59E0B"},
			{ID: "z4", Name: "Tanger", Color: "#10B981"},
			{ID: "z5", Name: "Fès", Color: "#EF4444"},
			{ID: "z6", Name: "Agadir", Color: "#EC4899"},
		},
	}

	ds.Vehicles = []models.Vehicle{
		// Motos (15)
		vehicle("v1", "A-1234-MA", models.TypeMoto, "Honda", "CBR 600", models.FuelGasoline, 18, 12, 45230, 4.2, models.StatusMoving, now, daysAgo(365), "Casablanca", 33.5731, -7.5898),
		vehicle("v2", "B-5678-MA", models.TypeMoto, "Yamaha", "MT-07", models.FuelGasoline, 14, 8, 32100, 3.8, models.StatusOnline, now, daysAgo(280), "Rabat", 34.0209, -6.8416),
		vehicle("v3", "C-9012-MA", models.TypeMoto, "Kawasaki", "Z650", models.FuelGasoline, 15, 5, 28500, 4.0, models.StatusStopped, hoursAgo(2), daysAgo(200), "Marrakech", 31.6295, -7.9811),
		vehicle("v4", "D-3456-MA", models.TypeMoto, "Suzuki", "GSX-R750", models.FuelGasoline, 17, 14, 51200, 5.1, models.StatusMoving, now, daysAgo(450), "Tanger", 35.7595, -5.8340),
		vehicle("v5", "E-7890-MA", models.TypeMoto, "BMW", "R1250 GS", models.FuelGasoline, 20, 16, 67800, 5.5, models.StatusOnline, now, daysAgo(520), "Fès", 34.0181, -5.0078),
		vehicle("v6", "F-2345-MA", models.TypeMoto, "Honda", "Africa Twin", models.FuelGasoline, 24, 10, 89000, 5.8, models.StatusOffline, hoursAgo(30), daysAgo(600), "Agadir", 30.4278, -9.5981),
		vehicle("v7", "G-6789-MA", models.TypeMoto, "Triumph", "Tiger 900", models.FuelGasoline, 20, 18, 34500, 4.9, models.StatusMoving, now, daysAgo(180), "Casablanca", 33.5950, -7.6187),
		vehicle("v8", "H-0123-MA", models.TypeMoto, "KTM", "790 Adventure", models.FuelGasoline, 20, 7, 42300, 4.7, models.StatusStopped, hoursAgo(5), daysAgo(320), "Rabat", 33.9716, -6.8498),
		vehicle("v9", "I-4567-MA", models.TypeMoto, "Ducati", "Monster 821", models.FuelGasoline, 16, 11, 25600, 5.3, models.StatusOnline, now, daysAgo(150), "Marrakech", 31.6340, -8.0080),
		vehicle("v10", "J-8901-MA", models.TypeMoto, "Harley-Davidson", "Street Glide", models.FuelGasoline, 22, 20, 78900, 6.2, models.StatusOffline, daysAgo(8), daysAgo(700), "Tanger", 35.7672, -5.7998),
		vehicle("v11", "K-2345-MA", models.TypeMoto, "Honda", "CB500X", models.FuelGasoline, 17, 9, 38700, 3.9, models.StatusMoving, now, daysAgo(240), "Fès", 34.0331, -4.9998),
		vehicle("v12", "L-6789-MA", models.TypeMoto, "Yamaha", "Ténéré 700", models.FuelGasoline, 16, 13, 29800, 4.1, models.StatusOnline, now, daysAgo(190), "Agadir", 30.4202, -9.5832),
		vehicle("v13", "M-0123-MA", models.TypeMoto, "Suzuki", "V-Strom 650", models.FuelGasoline, 20, 6, 56400, 4.4, models.StatusStopped, hoursAgo(12), daysAgo(400), "Casablanca", 33.5500, -7.6200),
		vehicle("v14", "N-4567-MA", models.TypeMoto, "BMW", "F850 GS", models.FuelGasoline, 15, 12, 41200, 4.6, models.StatusMoving, now, daysAgo(300), "Rabat", 34.0132, -6.8326),
		vehicle("v15", "O-8901-MA", models.TypeMoto, "Kawasaki", "Versys 1000", models.FuelGasoline, 21, 15, 62100, 5.4, models.StatusOffline, daysAgo(35), daysAgo(500), "Marrakech", 31.6500, -7.9500),

		// Véhicules légers (25)
		vehicle("v16", "P-1234-MA", models.TypeCar, "Renault", "Clio", models.FuelDiesel, 45, 32, 89500, 5.2, models.StatusMoving, now, daysAgo(400), "Casablanca", 33.5831, -7.6114),
		vehicle("v17", "Q-5678-MA", models.TypeCar, "Peugeot", "308", models.FuelDiesel, 53, 28, 112000, 5.8, models.StatusOnline, now, daysAgo(600), "Rabat", 33.9850, -6.8540),
		vehicle("v18", "R-9012-MA", models.TypeCar, "Volkswagen", "Golf", models.FuelDiesel, 50, 40, 76800, 5.5, models.StatusStopped, hoursAgo(1), daysAgo(350), "Marrakech", 31.6100, -8.0200),
		vehicle("v19", "S-3456-MA", models.TypeCar, "Dacia", "Duster", models.FuelDiesel, 50, 15, 145000, 6.2, models.StatusMoving, now, daysAgo(800), "Tanger", 35.7800, -5.8100),
		vehicle("v20", "T-7890-MA", models.TypeCar, "Toyota", "Corolla", models.FuelGasoline, 50, 45, 58900, 6.8, models.StatusOnline, now, daysAgo(250), "Fès", 34.0400, -4.9800),
		vehicle("v21", "U-2345-MA", models.TypeCar, "Ford", "Focus", models.FuelDiesel, 52, 22, 98700, 5.4, models.StatusOffline, hoursAgo(20), daysAgo(450), "Agadir", 30.4100, -9.6100),
		vehicle("v22", "V-6789-MA", models.TypeCar, "Hyundai", "Tucson", models.FuelDiesel, 54, 48, 67200, 6.5, models.StatusMoving, now, daysAgo(300), "Casablanca", 33.5600, -7.5700),
		vehicle("v23", "W-0123-MA", models.TypeCar, "Kia", "Sportage", models.FuelDiesel, 54, 30, 83400, 6.3, models.StatusStopped, hoursAgo(4), daysAgo(380), "Rabat", 34.0050, -6.8300),
		vehicle("v24", "X-4567-MA", models.TypeCar, "Nissan", "Qashqai", models.FuelDiesel, 55, 35, 92100, 6.1, models.StatusOnline, now, daysAgo(420), "Marrakech", 31.6200, -7.9900),
		vehicle("v25", "Y-8901-MA", models.TypeCar, "Citroën", "C3", models.FuelGasoline, 45, 18, 54300, 5.9, models.StatusMoving, now, daysAgo(220), "Tanger", 35.7500, -5.8500),
		vehicle("v26", "Z-2345-MA", models.TypeCar, "Opel", "Astra", models.FuelDiesel, 48, 42, 78600, 5.3, models.StatusOffline, daysAgo(2), daysAgo(360), "Fès", 34.0250, -5.0150),
		vehicle("v27", "AA-6789-MA", models.TypeCar, "Seat", "Leon", models.FuelDiesel, 50, 25, 65800, 5.1, models.StatusMoving, now, daysAgo(280), "Agadir", 30.4350, -9.5900),
		vehicle("v28", "AB-0123-MA", models.TypeCar, "Skoda", "Octavia", models.FuelDiesel, 55, 50, 134500, 5.6, models.StatusOnline, now, daysAgo(650), "Casablanca", 33.5450, -7.6400),
		vehicle("v29", "AC-4567-MA", models.TypeCar, "Fiat", "500", models.FuelGasoline, 35, 20, 42100, 5.0, models.StatusStopped, hoursAgo(8), daysAgo(180), "Rabat", 33.9900, -6.8650),
		vehicle("v30", "AD-8901-MA", models.TypeCar, "Mercedes", "Classe A", models.FuelDiesel, 43, 38, 56700, 5.7, models.StatusMoving, now, daysAgo(260), "Marrakech", 31.6450, -7.9650),
		vehicle("v31", "AE-2345-MA", models.TypeCar, "Audi", "A3", models.FuelDiesel, 50, 12, 87300, 5.4, models.StatusOffline, daysAgo(12), daysAgo(420), "Tanger", 35.7650, -5.8200),
		vehicle("v32", "AF-6789-MA", models.TypeCar, "BMW", "Serie 1", models.FuelDiesel, 52, 45, 72400, 5.8, models.StatusOnline, now, daysAgo(340), "Fès", 34.0150, -4.9950),
		vehicle("v33", "AG-0123-MA", models.TypeCar, "Renault", "Megane", models.FuelDiesel, 50, 28, 105600, 5.5, models.StatusMoving, now, daysAgo(550), "Agadir", 30.4180, -9.6050),
		vehicle("v34", "AH-4567-MA", models.TypeCar, "Peugeot", "208", models.FuelGasoline, 44, 35, 48900, 5.2, models.StatusStopped, hoursAgo(3), daysAgo(200), "Casablanca", 33.5750, -7.5950),
		vehicle("v35", "AI-8901-MA", models.TypeCar, "Volkswagen", "Polo", models.FuelGasoline, 40, 22, 39700, 5.4, models.StatusOnline, now, daysAgo(170), "Rabat", 34.0080, -6.8480),
		vehicle("v36", "AJ-2345-MA", models.TypeCar, "Dacia", "Sandero", models.FuelGasoline, 50, 40, 67800, 6.0, models.StatusMoving, now, daysAgo(310), "Marrakech", 31.6380, -8.0050),
		vehicle("v37", "AK-6789-MA", models.TypeCar, "Toyota", "Yaris", models.FuelGasoline, 42, 15, 52300, 5.1, models.StatusOffline, hoursAgo(48), daysAgo(230), "Tanger", 35.7550, -5.8350),
		vehicle("v38", "AL-0123-MA", models.TypeCar, "Honda", "Civic", models.FuelGasoline, 47, 42, 61200, 6.2, models.StatusMoving, now, daysAgo(290), "Fès", 34.0280, -5.0080),
		vehicle("v39", "AM-4567-MA", models.TypeCar, "Mazda", "CX-5", models.FuelDiesel, 56, 48, 78500, 6.4, models.StatusOnline, now, daysAgo(370), "Agadir", 30.4250, -9.5950),
		vehicle("v40", "AN-8901-MA", models.TypeCar, "Jeep", "Compass", models.FuelDiesel, 60, 35, 94200, 7.1, models.StatusStopped, hoursAgo(6), daysAgo(440), "Casablanca", 33.5680, -7.6050),

		// Camions (8)
		vehicle("v41", "AO-1234-MA", models.TypeTruck, "Mercedes", "Actros", models.FuelDiesel, 400, 280, 456000, 28.5, models.StatusMoving, now, daysAgo(900), "Casablanca", 33.5400, -7.6500),
		vehicle("v42", "AP-5678-MA", models.TypeTruck, "Volvo", "FH16", models.FuelDiesel, 450, 320, 523000, 30.2, models.StatusOnline, now, daysAgo(1000), "Rabat", 33.9950, -6.8700),
		vehicle("v43", "AQ-9012-MA", models.TypeTruck, "Scania", "R500", models.FuelDiesel, 400, 150, 389000, 27.8, models.StatusStopped, hoursAgo(10), daysAgo(750), "Marrakech", 31.6050, -8.0300),
		vehicle("v44", "AR-3456-MA", models.TypeTruck, "MAN", "TGX", models.FuelDiesel, 380, 290, 612000, 29.5, models.StatusMoving, now, daysAgo(1200), "Tanger", 35.7720, -5.8050),
		vehicle("v45", "AS-7890-MA", models.TypeTruck, "DAF", "XF", models.FuelDiesel, 425, 380, 478000, 28.9, models.StatusOffline, daysAgo(3), daysAgo(850), "Fès", 34.0350, -4.9900),
		vehicle("v46", "AT-2345-MA", models.TypeTruck, "Iveco", "Stralis", models.FuelDiesel, 390, 200, 345000, 27.2, models.StatusMoving, now, daysAgo(680), "Agadir", 30.4050, -9.6200),
		vehicle("v47", "AU-6789-MA", models.TypeTruck, "Renault", "T High", models.FuelDiesel, 400, 350, 298000, 26.8, models.StatusOnline, now, daysAgo(580), "Casablanca", 33.5550, -7.6300),
		vehicle("v48", "AV-0123-MA", models.TypeTruck, "Mercedes", "Arocs", models.FuelDiesel, 350, 180, 267000, 32.5, models.StatusStopped, hoursAgo(15), daysAgo(500), "Rabat", 34.0000, -6.8550),

		// Autres (2)
		vehicle("v49", "AW-4567-MA", models.TypeOther, "John Deere", "6150R", models.FuelDiesel, 340, 250, 12500, 15.2, models.StatusOnline, now, daysAgo(400), "Marrakech", 31.5900, -8.0500),
		vehicle("v50", "AX-8901-MA", models.TypeOther, "Caterpillar", "140M", models.FuelDiesel, 400, 300, 8900, 22.0, models.StatusOffline, daysAgo(5), daysAgo(300), "Agadir", 30.3900, -9.6300),
	}
	ds.Vehicles[48].Driver = "Ahmed Bennani"
	ds.Vehicles[49].Driver = "Youssef El Amrani"

	ds.FuelEvents = []models.FuelEvent{
		fuelEvent("fe1", "v16", daysAgo(1), models.FuelRefill, 35, 10, 45, 89500, "Station Afriquia Casablanca"),
		fuelEvent("fe2", "v16", daysAgo(7), models.FuelConsumption, -25, 45, 20, 89100, ""),
		fuelEvent("fe3", "v16", daysAgo(14), models.FuelRefill, 40, 8, 48, 88700, "Station Shell Ain Sebaa"),
		fuelEvent("fe4", "v16", daysAgo(21), models.FuelAnomaly, -15, 35, 20, 88300, ""),
		fuelEvent("fe5", "v19", daysAgo(2), models.FuelRefill, 42, 8, 50, 145000, "Station Total Tanger"),
		fuelEvent("fe6", "v19", daysAgo(10), models.FuelConsumption, -30, 50, 20, 144500, ""),
		fuelEvent("fe7", "v19", daysAgo(18), models.FuelRefill, 45, 5, 50, 144000, "Station Afriquia Tanger"),
		fuelEvent("fe8", "v41", daysAgo(3), models.FuelRefill, 250, 80, 330, 456000, "Station Petrom Casablanca"),
		fuelEvent("fe9", "v41", daysAgo(5), models.FuelConsumption, -120, 330, 210, 455600, ""),
		fuelEvent("fe10", "v41", daysAgo(8), models.FuelRefill, 300, 100, 400, 455200, "Station Total Berrechid"),
		fuelEvent("fe11", "v41", daysAgo(12), models.FuelAnomaly, -80, 280, 200, 454800, ""),
		fuelEvent("fe12", "v1", daysAgo(4), models.FuelRefill, 15, 3, 18, 45230, "Station Shell Casablanca"),
		fuelEvent("fe13", "v22", daysAgo(6), models.FuelRefill, 45, 10, 55, 67200, "Station Afriquia Casablanca"),
		fuelEvent("fe14", "v42", daysAgo(9), models.FuelRefill, 350, 100, 450, 523000, "Station Total Rabat"),
		fuelEvent("fe15", "v5", daysAgo(11), models.FuelAnomaly, -8, 20, 12, 67800, ""),
	}

	ds.Alerts = []models.Alert{
		alert("a1", "v16", models.AlertFuelAnomaly, models.SeverityHigh, "Descente anormale de carburant détectée", daysAgo(1), false, "Perte de 15L en 30 minutes sans déplacement"),
		alert("a2", "v10", models.AlertGPSDisconnect, models.SeverityMedium, "GPS déconnecté depuis 8 jours", daysAgo(8), false, "Dernière position: Tanger"),
		alert("a3", "v4", models.AlertOverspeed, models.SeverityHigh, "Excès de vitesse: 145 km/h", hoursAgo(3), true, "Vitesse maximale autorisée: 120 km/h"),
		alert("a4", "v41", models.AlertFuelAnomaly, models.SeverityHigh, "Descente anormale de carburant", daysAgo(12), true, "Perte de 80L détectée"),
		alert("a5", "v15", models.AlertGPSDisconnect, models.SeverityHigh, "GPS hors ligne depuis 35 jours", daysAgo(35), false, "Vérification requise"),
		alert("a6", "v43", models.AlertProlongedStop, models.SeverityLow, "Arrêt prolongé détecté", hoursAgo(10), false, "Véhicule à l'arrêt depuis 10 heures"),
		alert("a7", "v19", models.AlertGeofenceExit, models.SeverityMedium, "Sortie de zone autorisée", daysAgo(2), true, "Sortie de la zone Tanger"),
		alert("a8", "v22", models.AlertOverspeed, models.SeverityMedium, "Excès de vitesse: 95 km/h en zone 50", daysAgo(3), true, ""),
		alert("a9", "v31", models.AlertGPSDisconnect, models.SeverityHigh, "GPS déconnecté depuis 12 jours", daysAgo(12), false, ""),
		alert("a10", "v5", models.AlertFuelAnomaly, models.SeverityMedium, "Consommation anormale détectée", daysAgo(11), false, "Consommation 40% supérieure à la moyenne"),
		alert("a11", "v37", models.AlertGPSDisconnect, models.SeverityMedium, "GPS hors ligne depuis 48 heures", hoursAgo(48), false, ""),
		alert("a12", "v44", models.AlertOverspeed, models.SeverityHigh, "Excès de vitesse: 110 km/h (camion)", daysAgo(1), false, "Vitesse max camion: 90 km/h"),
		alert("a13", "v7", models.AlertProlongedStop, models.SeverityLow, "Arrêt non planifié", hoursAgo(6), true, ""),
		alert("a14", "v26", models.AlertGPSDisconnect, models.SeverityMedium, "GPS hors ligne depuis 2 jours", daysAgo(2), false, ""),
		alert("a15", "v50", models.AlertGPSDisconnect, models.SeverityHigh, "GPS déconnecté depuis 5 jours", daysAgo(5), false, ""),
	}

	ds.Maintenances = []models.Maintenance{
		maint("m1", "v16", models.MaintOilChange, models.MaintCompleted, daysAgo(30), daysAgo(28), 88000, 850, "Vidange + filtre à huile", true),
		maint("m2", "v41", models.MaintTireChange, models.MaintCompleted, daysAgo(15), daysAgo(14), 450000, 24000, "Remplacement 6 pneus", true),
		maint("m3", "v22", models.MaintBrakeService, models.MaintInProgress, daysAgo(2), time.Time{}, 67000, 1500, "Remplacement plaquettes avant", true),
		maint("m4", "v19", models.MaintGeneralInspection, models.MaintPlanned, daysAgo(-7), time.Time{}, 145000, 500, "Contrôle technique annuel", true),
		maint("m5", "v1", models.MaintRepair, models.MaintCompleted, daysAgo(45), daysAgo(44), 44500, 1200, "Réparation chaîne de transmission", false),
		maint("m6", "v42", models.MaintOilChange, models.MaintPlanned, daysAgo(-14), time.Time{}, 525000, 2500, "Vidange complète + filtres", true),
		maint("m7", "v5", models.MaintRepair, models.MaintCompleted, daysAgo(20), daysAgo(18), 67000, 3500, "Réparation boîte de vitesses", false),
		maint("m8", "v44", models.MaintBrakeService, models.MaintCompleted, daysAgo(60), daysAgo(58), 610000, 8500, "Révision complète système de freinage", true),
		maint("m9", "v28", models.MaintTireChange, models.MaintPlanned, daysAgo(-21), time.Time{}, 136000, 2800, "Remplacement 4 pneus hiver", true),
		maint("m10", "v33", models.MaintGeneralInspection, models.MaintInProgress, daysAgo(1), time.Time{}, 105600, 450, "Révision des 100 000 km", true),
		maint("m11", "v7", models.MaintOther, models.MaintCompleted, daysAgo(90), daysAgo(88), 32000, 650, "Remplacement batterie", false),
		maint("m12", "v46", models.MaintOilChange, models.MaintPlanned, daysAgo(-3), time.Time{}, 350000, 2200, "Vidange moteur + boîte", true),
	}

	return ds
}

// vehicle keeps the seed table readable: one record per line, total
// distance mirrors the odometer for every seeded vehicle.
func vehicle(id, matricule string, typ models.VehicleType, brand, model string, fuel models.FuelType, capacity, level, odometer, avgConsumption float64, status models.VehicleStatus, lastOnline, installed time.Time, zone string, lat, lng float64) models.Vehicle {
	return models.Vehicle{
		ID:               id,
		Matricule:        matricule,
		Type:             typ,
		Brand:            brand,
		Model:            model,
		FuelType:         fuel,
		FuelCapacity:     capacity,
		CurrentFuelLevel: level,
		Odometer:         odometer,
		TotalDistance:    odometer,
		AvgConsumption:   avgConsumption,
		Status:           status,
		LastOnline:       lastOnline,
		GPSInstallDate:   installed,
		Zone:             zone,
		Position:         models.Position{Lat: lat, Lng: lng},
	}
}

func fuelEvent(id, vehicleID string, date time.Time, typ models.FuelEventType, amount, previous, next, odometer float64, location string) models.FuelEvent {
	return models.FuelEvent{
		ID:            id,
		VehicleID:     vehicleID,
		Date:          date,
		Type:          typ,
		Amount:        amount,
		PreviousLevel: previous,
		NewLevel:      next,
		Odometer:      odometer,
		Location:      location,
	}
}

func alert(id, vehicleID string, typ models.AlertType, severity models.AlertSeverity, message string, date time.Time, resolved bool, details string) models.Alert {
	return models.Alert{
		ID:        id,
		VehicleID: vehicleID,
		Type:      typ,
		Severity:  severity,
		Message:   message,
		Date:      date,
		Resolved:  resolved,
		Details:   details,
	}
}

func maint(id, vehicleID string, typ models.MaintenanceType, status models.MaintenanceStatus, planned, completed time.Time, odometer, cost float64, description string, isPlanned bool) models.Maintenance {
	return models.Maintenance{
		ID:            id,
		VehicleID:     vehicleID,
		Type:          typ,
		Status:        status,
		PlannedDate:   planned,
		CompletedDate: completed,
		Odometer:      odometer,
		Cost:          cost,
		Description:   description,
		IsPlanned:     isPlanned,
	}
}
