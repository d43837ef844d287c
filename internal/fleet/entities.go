package fleet

import (
	"github.com/fleetflow/fleetflow/internal/models"
	"github.com/fleetflow/fleetflow/internal/notify"
)

// hasID reports whether a record with the id already exists in any
// collection holding that entity kind.
func hasID[T any](records []T, id string, idOf func(T) string) bool {
	for _, r := range records {
		if idOf(r) == id {
			return true
		}
	}
	return false
}

// AddVehicle appends a vehicle. Ids are the single enforcement point for
// uniqueness: an add with a duplicate id is silently ignored.
func (s *Store) AddVehicle(v models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasID(s.vehicles, v.ID, func(v models.Vehicle) string { return v.ID }) {
		return
	}
	s.vehicles = append(s.vehicles, v)
	s.saveVehicles()
}

// UpdateVehicle replaces the record whose id matches; no-op if not found.
func (s *Store) UpdateVehicle(v models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == v.ID {
			s.vehicles[i] = v
			s.saveVehicles()
			return
		}
	}
}

// DeleteVehicle removes the matching record. Trips and logs referencing
// the vehicle are left in place; lookups against them degrade to
// "Unknown".
func (s *Store) DeleteVehicle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			s.saveVehicles()
			return
		}
	}
}

// UpdateVehicleStatus is a status-only patch, used by lifecycle rules and
// manual admin override.
func (s *Store) UpdateVehicleStatus(id string, status models.VehicleStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setVehicleStatus(id, status)
}

// setVehicleStatus is UpdateVehicleStatus without the lock, for use
// inside lifecycle rules already holding it.
func (s *Store) setVehicleStatus(id string, status models.VehicleStatus) {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles[i].Status = status
			s.saveVehicles()
			s.publish(notify.KindVehicleStatus, id, string(status))
			return
		}
	}
}

// AddDriver appends a driver; duplicate ids are silently ignored.
func (s *Store) AddDriver(d models.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasID(s.drivers, d.ID, func(d models.Driver) string { return d.ID }) {
		return
	}
	s.drivers = append(s.drivers, d)
	s.saveDrivers()
}

// UpdateDriver replaces the record whose id matches; no-op if not found.
func (s *Store) UpdateDriver(d models.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].ID == d.ID {
			s.drivers[i] = d
			s.saveDrivers()
			return
		}
	}
}

// DeleteDriver removes the matching record without cascading cleanup.
func (s *Store) DeleteDriver(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].ID == id {
			s.drivers = append(s.drivers[:i], s.drivers[i+1:]...)
			s.saveDrivers()
			return
		}
	}
}

// CreateTrip appends a trip in whatever status the caller supplies
// (normally Draft); duplicate ids are silently ignored. Trips are
// append-only: no delete is defined.
func (s *Store) CreateTrip(t models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasID(s.trips, t.ID, func(t models.Trip) string { return t.ID }) {
		return
	}
	s.trips = append(s.trips, t)
	s.saveTrips()
}
