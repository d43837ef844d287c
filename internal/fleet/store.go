// Package fleet holds the five fleet collections as the single source of
// truth and applies the cross-entity lifecycle rules. The store is a
// single-writer, synchronous model: every operation runs to completion
// under one lock, and every mutation writes the affected collections back
// through the key-value store.
//
// Mutations return nothing. Lookups that miss are silent no-ops; input
// validation (capacity limits, availability checks, license expiry) is
// the calling layer's responsibility.
package fleet

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/models"
	"github.com/fleetflow/fleetflow/internal/notify"
	"github.com/fleetflow/fleetflow/internal/storage"
)

// Snapshot is a point-in-time copy of all collections, the unit consumed
// by derived views and list endpoints.
type Snapshot struct {
	Vehicles        []models.Vehicle        `json:"vehicles"`
	Drivers         []models.Driver         `json:"drivers"`
	Trips           []models.Trip           `json:"trips"`
	MaintenanceLogs []models.MaintenanceLog `json:"maintenanceLogs"`
	FuelLogs        []models.FuelLog        `json:"fuelLogs"`
}

// VehicleName resolves a vehicle id for display. Dangling references
// degrade to "Unknown".
func (s Snapshot) VehicleName(id string) string {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v.Name
		}
	}
	return "Unknown"
}

// DriverName resolves a driver id for display, degrading to "Unknown".
func (s Snapshot) DriverName(id string) string {
	for _, d := range s.Drivers {
		if d.ID == id {
			return d.Name
		}
	}
	return "Unknown"
}

// Store owns the fleet collections. Construct with Open.
type Store struct {
	mu sync.Mutex

	kv        storage.KV
	publisher notify.Publisher
	now       func() time.Time

	vehicles        []models.Vehicle
	drivers         []models.Driver
	trips           []models.Trip
	maintenanceLogs []models.MaintenanceLog
	fuelLogs        []models.FuelLog
}

// Option configures a Store.
type Option func(*Store)

// WithPublisher broadcasts lifecycle events to the given publisher.
func WithPublisher(p notify.Publisher) Option {
	return func(s *Store) { s.publisher = p }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads each collection from the key-value store, falling back to
// the given seed when a key is absent or its value is malformed.
func Open(kv storage.KV, seed Snapshot, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		publisher: notify.NopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	loadCollection(kv, storage.KeyVehicles, &s.vehicles, seed.Vehicles)
	loadCollection(kv, storage.KeyDrivers, &s.drivers, seed.Drivers)
	loadCollection(kv, storage.KeyTrips, &s.trips, seed.Trips)
	loadCollection(kv, storage.KeyMaintenanceLogs, &s.maintenanceLogs, seed.MaintenanceLogs)
	loadCollection(kv, storage.KeyFuelLogs, &s.fuelLogs, seed.FuelLogs)

	return s
}

// loadCollection reads one collection key. A malformed stored value is
// treated as absent: logged, then replaced by the seed.
func loadCollection[T any](kv storage.KV, key string, dst *[]T, seed []T) {
	value, err := kv.Get(context.Background(), key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.WithError(err).WithField("key", key).Warn("failed to read collection, using seed data")
		}
		*dst = append([]T(nil), seed...)
		return
	}

	var records []T
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		log.WithError(err).WithField("key", key).Warn("malformed stored collection, using seed data")
		*dst = append([]T(nil), seed...)
		return
	}
	*dst = records
}

// saveCollection re-serializes a full collection and writes it back under
// its key. Write failures are logged, never propagated: the in-memory
// state remains authoritative and the worst case is stale persisted data.
func (s *Store) saveCollection(key string, records any) {
	payload, err := json.Marshal(records)
	if err != nil {
		log.WithError(err).WithField("key", key).Error("failed to serialize collection")
		return
	}
	if err := s.kv.Set(context.Background(), key, string(payload)); err != nil {
		log.WithError(err).WithField("key", key).Error("failed to persist collection")
	}
}

func (s *Store) saveVehicles()        { s.saveCollection(storage.KeyVehicles, s.vehicles) }
func (s *Store) saveDrivers()         { s.saveCollection(storage.KeyDrivers, s.drivers) }
func (s *Store) saveTrips()           { s.saveCollection(storage.KeyTrips, s.trips) }
func (s *Store) saveMaintenanceLogs() { s.saveCollection(storage.KeyMaintenanceLogs, s.maintenanceLogs) }
func (s *Store) saveFuelLogs()        { s.saveCollection(storage.KeyFuelLogs, s.fuelLogs) }

func (s *Store) publish(kind, entityID, status string) {
	s.publisher.Publish(notify.Event{
		Kind:     kind,
		EntityID: entityID,
		Status:   status,
		At:       s.now(),
	})
}

// Snapshot returns a copy of all collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Vehicles:        append([]models.Vehicle(nil), s.vehicles...),
		Drivers:         append([]models.Driver(nil), s.drivers...),
		Trips:           append([]models.Trip(nil), s.trips...),
		MaintenanceLogs: append([]models.MaintenanceLog(nil), s.maintenanceLogs...),
		FuelLogs:        append([]models.FuelLog(nil), s.fuelLogs...),
	}
}

// Vehicles returns a copy of the vehicle collection in insertion order.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Vehicle(nil), s.vehicles...)
}

// Drivers returns a copy of the driver collection.
func (s *Store) Drivers() []models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Driver(nil), s.drivers...)
}

// Trips returns a copy of the trip collection.
func (s *Store) Trips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trip(nil), s.trips...)
}

// MaintenanceLogs returns a copy of the maintenance log collection.
func (s *Store) MaintenanceLogs() []models.MaintenanceLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MaintenanceLog(nil), s.maintenanceLogs...)
}

// FuelLogs returns a copy of the fuel log collection.
func (s *Store) FuelLogs() []models.FuelLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FuelLog(nil), s.fuelLogs...)
}

// Vehicle looks up a vehicle by id.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// Driver looks up a driver by id.
func (s *Store) Driver(id string) (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.drivers {
		if d.ID == id {
			return d, true
		}
	}
	return models.Driver{}, false
}

// Trip looks up a trip by id.
func (s *Store) Trip(id string) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trips {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}

// MaintenanceLog looks up a maintenance log by id.
func (s *Store) MaintenanceLog(id string) (models.MaintenanceLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.maintenanceLogs {
		if l.ID == id {
			return l, true
		}
	}
	return models.MaintenanceLog{}, false
}
