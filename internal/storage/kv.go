// Package storage provides the key-value string store backing the fleet
// state. Each collection is serialized as one JSON value under one key;
// writes are whole-value, there is no incremental diffing and no schema
// versioning.
package storage

import (
	"context"
	"errors"
)

// Persisted state layout: one key per collection, plus the current-session
// record and the registered-user list.
const (
	KeyVehicles        = "fleetData_vehicles"
	KeyDrivers         = "fleetData_drivers"
	KeyTrips           = "fleetData_trips"
	KeyMaintenanceLogs = "fleetData_maintenanceLogs"
	KeyFuelLogs        = "fleetData_fuelLogs"
	KeyUser            = "fleetData_user"
	KeyRegisteredUsers = "fleetData_registeredUsers"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// KV is a key-value string store.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close(ctx context.Context) error
}
