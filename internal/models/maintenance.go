package models

import "time"

// MaintenanceStatus is the state of a maintenance log.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

// MaintenanceLog records a shop visit for a vehicle. Opening a log forces
// the vehicle In Shop; completing it restores Available.
type MaintenanceLog struct {
	ID          string            `json:"id"`
	VehicleID   string            `json:"vehicleId"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Cost        float64           `json:"cost"` // USD
	Date        time.Time         `json:"date"`
	Status      MaintenanceStatus `json:"status"`
}
