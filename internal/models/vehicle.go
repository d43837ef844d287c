package models

import "time"

// VehicleType classifies a fleet vehicle.
type VehicleType string

const (
	VehicleTruck VehicleType = "Truck"
	VehicleVan   VehicleType = "Van"
	VehicleBike  VehicleType = "Bike"
)

// VehicleStatus is the operational state of a vehicle. It is authoritative
// for dispatch eligibility: only Available vehicles may be assigned to a
// new trip.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "Available"
	VehicleOnTrip    VehicleStatus = "On Trip"
	VehicleInShop    VehicleStatus = "In Shop"
	VehicleRetired   VehicleStatus = "Retired"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         VehicleType   `json:"type"`
	LicensePlate string        `json:"licensePlate"`
	MaxCapacity  float64       `json:"maxCapacity"` // kg
	Odometer     float64       `json:"odometer"`    // km, monotonic non-decreasing
	Status       VehicleStatus `json:"status"`
	Region       string        `json:"region"`
	LastService  time.Time     `json:"lastService"`
}

// IsValidVehicleType reports whether t is a known vehicle type.
func IsValidVehicleType(t VehicleType) bool {
	switch t {
	case VehicleTruck, VehicleVan, VehicleBike:
		return true
	default:
		return false
	}
}

// IsValidVehicleStatus reports whether s is a known vehicle status.
func IsValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleRetired:
		return true
	default:
		return false
	}
}
