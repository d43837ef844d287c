package models

import "time"

// FuelLog records a fill-up for a vehicle.
type FuelLog struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicleId"`
	Liters    float64   `json:"liters"`
	Cost      float64   `json:"cost"` // USD
	Date      time.Time `json:"date"`
	Odometer  float64   `json:"odometer"` // km at fill time
}
