package fleet

import (
	"github.com/fleetflow/fleetflow/internal/models"
	"github.com/fleetflow/fleetflow/internal/notify"
)

// StartTrip transitions a Draft trip to Dispatched and commits the
// referenced vehicle and driver to it: trip Dispatched, vehicle On Trip,
// driver On Trip. The transition itself is unconditional once invoked;
// preconditions (vehicle Available, driver dispatch-eligible) are checked
// by the calling layer. Unknown trip id is a no-op.
func (s *Store) StartTrip(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := s.findTrip(tripID)
	if trip == nil {
		return
	}

	trip.Status = models.TripDispatched
	s.saveTrips()
	s.publish(notify.KindTripStatus, trip.ID, string(trip.Status))

	s.setVehicleStatus(trip.VehicleID, models.VehicleOnTrip)
	s.setDriverStatus(trip.DriverID, models.DriverOnTrip)
}

// CompleteTrip transitions a Dispatched trip to Completed: sets
// completedAt, frees the vehicle (odometer advances to
// max(current, finalOdometer) — never backwards), returns the driver to
// On Duty and increments their trip counter. Unknown trip id is a no-op.
func (s *Store) CompleteTrip(tripID string, finalOdometer float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := s.findTrip(tripID)
	if trip == nil {
		return
	}

	now := s.now()
	trip.Status = models.TripCompleted
	trip.CompletedAt = &now
	s.saveTrips()
	s.publish(notify.KindTripStatus, trip.ID, string(trip.Status))

	for i := range s.vehicles {
		if s.vehicles[i].ID == trip.VehicleID {
			s.vehicles[i].Status = models.VehicleAvailable
			if finalOdometer > s.vehicles[i].Odometer {
				s.vehicles[i].Odometer = finalOdometer
			}
			s.saveVehicles()
			s.publish(notify.KindVehicleStatus, trip.VehicleID, string(models.VehicleAvailable))
			break
		}
	}

	for i := range s.drivers {
		if s.drivers[i].ID == trip.DriverID {
			s.drivers[i].Status = models.DriverOnDuty
			s.drivers[i].TripsCompleted++
			s.saveDrivers()
			s.publish(notify.KindDriverStatus, trip.DriverID, string(models.DriverOnDuty))
			break
		}
	}
}

// AddMaintenanceLog appends the log and unconditionally forces the
// referenced vehicle In Shop, whatever its prior status. The append
// succeeds even when the vehicle reference is dangling. Duplicate log ids
// are silently ignored. Logs are append-only: no delete is defined.
func (s *Store) AddMaintenanceLog(l models.MaintenanceLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasID(s.maintenanceLogs, l.ID, func(l models.MaintenanceLog) string { return l.ID }) {
		return
	}
	s.maintenanceLogs = append(s.maintenanceLogs, l)
	s.saveMaintenanceLogs()

	s.setVehicleStatus(l.VehicleID, models.VehicleInShop)
}

// CompleteMaintenanceLog marks the log Completed and unconditionally
// restores the referenced vehicle to Available. There is no check for
// other open logs against the same vehicle; the last completion wins.
// Unknown log id is a no-op. Idempotent: repeating the call re-sets the
// same values.
func (s *Store) CompleteMaintenanceLog(logID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var log *models.MaintenanceLog
	for i := range s.maintenanceLogs {
		if s.maintenanceLogs[i].ID == logID {
			log = &s.maintenanceLogs[i]
			break
		}
	}
	if log == nil {
		return
	}

	log.Status = models.MaintenanceCompleted
	s.saveMaintenanceLogs()

	s.setVehicleStatus(log.VehicleID, models.VehicleAvailable)
}

// AddFuelLog appends the log and sets the referenced vehicle to
// Available. Fuel logging is modeled as ending a shop or trip visit, not
// as a neutral event; the status write happens regardless of the
// vehicle's current state. Duplicate log ids are silently ignored.
func (s *Store) AddFuelLog(l models.FuelLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasID(s.fuelLogs, l.ID, func(l models.FuelLog) string { return l.ID }) {
		return
	}
	s.fuelLogs = append(s.fuelLogs, l)
	s.saveFuelLogs()

	s.setVehicleStatus(l.VehicleID, models.VehicleAvailable)
}

// findTrip returns a pointer into the trip collection, nil when absent.
// Callers must hold the store lock.
func (s *Store) findTrip(id string) *models.Trip {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return &s.trips[i]
		}
	}
	return nil
}

// setDriverStatus patches one driver's status. Callers must hold the
// store lock.
func (s *Store) setDriverStatus(id string, status models.DriverStatus) {
	for i := range s.drivers {
		if s.drivers[i].ID == id {
			s.drivers[i].Status = status
			s.saveDrivers()
			s.publish(notify.KindDriverStatus, id, string(status))
			return
		}
	}
}
