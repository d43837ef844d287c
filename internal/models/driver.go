package models

import "time"

// DriverStatus is the duty state of a driver.
type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverSuspended DriverStatus = "Suspended"
	DriverOnTrip    DriverStatus = "On Trip"
)

// Driver represents a fleet driver.
type Driver struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	LicenseExpiry     time.Time     `json:"licenseExpiry"`
	LicenseCategories []VehicleType `json:"licenseCategories"`
	Status            DriverStatus  `json:"status"`
	SafetyScore       int           `json:"safetyScore"` // 0-100, display only
	TripsCompleted    int           `json:"tripsCompleted"`
	Phone             string        `json:"phone"`
}

// LicensedFor reports whether the driver's license covers the given
// vehicle type.
func (d *Driver) LicensedFor(t VehicleType) bool {
	for _, c := range d.LicenseCategories {
		if c == t {
			return true
		}
	}
	return false
}

// DispatchEligible reports whether the driver may be committed to a new
// trip: On Duty or Off Duty, with an unexpired license.
func (d *Driver) DispatchEligible(now time.Time) bool {
	if d.Status != DriverOnDuty && d.Status != DriverOffDuty {
		return false
	}
	return d.LicenseExpiry.After(now)
}
