package models

import "time"

type MaintenanceType string

const (
	MaintOilChange         MaintenanceType = "oil_change"
	MaintTireChange        MaintenanceType = "tire_change"
	MaintBrakeService      MaintenanceType = "brake_service"
	MaintGeneralInspection MaintenanceType = "general_inspection"
	MaintRepair            MaintenanceType = "repair"
	MaintOther             MaintenanceType = "other"
)

type MaintenanceStatus string

const (
	MaintPlanned    MaintenanceStatus = "planned"
	MaintInProgress MaintenanceStatus = "in_progress"
	MaintCompleted  MaintenanceStatus = "completed"
)

// Maintenance is a service intervention on a vehicle. IsPlanned is false
// for reactive/unscheduled work, independent of Status.
type Maintenance struct {
	ID            string            `json:"id"`
	VehicleID     string            `json:"vehicle_id"`
	Type          MaintenanceType   `json:"type"`
	Status        MaintenanceStatus `json:"status"`
	PlannedDate   time.Time         `json:"planned_date"`
	CompletedDate time.Time         `json:"completed_date,omitzero"`
	Odometer      float64           `json:"odometer"`
	Cost          float64           `json:"cost"` // MAD, >= 0
	Description   string            `json:"description"`
	IsPlanned     bool              `json:"is_planned"`
}
