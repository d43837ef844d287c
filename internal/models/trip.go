package models

import "time"

// TripStatus is the lifecycle state of a trip. Completed and Cancelled are
// terminal.
type TripStatus string

const (
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// Trip represents a cargo run assigning one vehicle and one driver.
type Trip struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicleId"`
	DriverID    string     `json:"driverId"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	CargoWeight float64    `json:"cargoWeight"` // kg
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
