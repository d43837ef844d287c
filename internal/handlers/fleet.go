// Package handlers exposes the fleet core over HTTP. All input
// validation lives here: the core performs none and cannot reject a
// call, so every precondition (required fields, capacity limits,
// availability, license expiry) is checked against a read of the same
// data before the mutation is invoked.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fleetflow/fleetflow/internal/fleet"
	"github.com/fleetflow/fleetflow/internal/models"
)

// FleetHandler handles vehicle, driver, trip and log requests.
type FleetHandler struct {
	store *fleet.Store
	now   func() time.Time
}

// NewFleetHandler creates a new fleet handler.
func NewFleetHandler(store *fleet.Store) *FleetHandler {
	return &FleetHandler{store: store, now: time.Now}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// Vehicles handles GET (list) and POST (add) on the vehicle collection.
func (h *FleetHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Vehicles())
	case http.MethodPost:
		h.addVehicle(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FleetHandler) addVehicle(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if !decodeJSON(w, r, &v) {
		return
	}

	if v.Name == "" || v.LicensePlate == "" {
		http.Error(w, "Name and license plate are required", http.StatusBadRequest)
		return
	}
	if !models.IsValidVehicleType(v.Type) {
		http.Error(w, "Invalid vehicle type", http.StatusBadRequest)
		return
	}
	if v.MaxCapacity <= 0 {
		http.Error(w, "Max capacity must be positive", http.StatusBadRequest)
		return
	}
	if v.Odometer < 0 {
		http.Error(w, "Odometer cannot be negative", http.StatusBadRequest)
		return
	}

	if v.ID == "" {
		v.ID = models.NewID("v")
	} else if _, exists := h.store.Vehicle(v.ID); exists {
		http.Error(w, "Vehicle id already exists", http.StatusConflict)
		return
	}
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	} else if !models.IsValidVehicleStatus(v.Status) {
		http.Error(w, "Invalid vehicle status", http.StatusBadRequest)
		return
	}

	h.store.AddVehicle(v)
	writeJSON(w, http.StatusCreated, v)
}

// UpdateVehicle replaces a vehicle record.
func (h *FleetHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if !decodeJSON(w, r, &v) {
		return
	}
	v.ID = r.PathValue("id")

	if _, exists := h.store.Vehicle(v.ID); !exists {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	if !models.IsValidVehicleStatus(v.Status) || !models.IsValidVehicleType(v.Type) {
		http.Error(w, "Invalid vehicle status or type", http.StatusBadRequest)
		return
	}

	h.store.UpdateVehicle(v)
	writeJSON(w, http.StatusOK, v)
}

// DeleteVehicle removes a vehicle record.
func (h *FleetHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, exists := h.store.Vehicle(id); !exists {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	h.store.DeleteVehicle(id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}

// UpdateVehicleStatus applies a manual status override.
func (h *FleetHandler) UpdateVehicleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Status models.VehicleStatus `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !models.IsValidVehicleStatus(req.Status) {
		http.Error(w, "Invalid vehicle status", http.StatusBadRequest)
		return
	}
	if _, exists := h.store.Vehicle(id); !exists {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	h.store.UpdateVehicleStatus(id, req.Status)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
}

// Drivers handles GET (list) and POST (add) on the driver collection.
func (h *FleetHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Drivers())
	case http.MethodPost:
		h.addDriver(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FleetHandler) addDriver(w http.ResponseWriter, r *http.Request) {
	var d models.Driver
	if !decodeJSON(w, r, &d) {
		return
	}

	if d.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if len(d.LicenseCategories) == 0 {
		http.Error(w, "At least one license category is required", http.StatusBadRequest)
		return
	}
	for _, c := range d.LicenseCategories {
		if !models.IsValidVehicleType(c) {
			http.Error(w, fmt.Sprintf("Invalid license category %q", c), http.StatusBadRequest)
			return
		}
	}
	if d.SafetyScore < 0 || d.SafetyScore > 100 {
		http.Error(w, "Safety score must be between 0 and 100", http.StatusBadRequest)
		return
	}

	if d.ID == "" {
		d.ID = models.NewID("d")
	} else if _, exists := h.store.Driver(d.ID); exists {
		http.Error(w, "Driver id already exists", http.StatusConflict)
		return
	}
	if d.Status == "" {
		d.Status = models.DriverOffDuty
	}

	h.store.AddDriver(d)
	writeJSON(w, http.StatusCreated, d)
}

// UpdateDriver replaces a driver record.
func (h *FleetHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	var d models.Driver
	if !decodeJSON(w, r, &d) {
		return
	}
	d.ID = r.PathValue("id")

	if _, exists := h.store.Driver(d.ID); !exists {
		http.Error(w, "Driver not found", http.StatusNotFound)
		return
	}

	h.store.UpdateDriver(d)
	writeJSON(w, http.StatusOK, d)
}

// DeleteDriver removes a driver record.
func (h *FleetHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, exists := h.store.Driver(id); !exists {
		http.Error(w, "Driver not found", http.StatusNotFound)
		return
	}

	h.store.DeleteDriver(id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Driver deleted"})
}

// Trips handles GET (list) and POST (create draft) on the trip
// collection.
func (h *FleetHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Trips())
	case http.MethodPost:
		h.createTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FleetHandler) createTrip(w http.ResponseWriter, r *http.Request) {
	var t models.Trip
	if !decodeJSON(w, r, &t) {
		return
	}

	if t.Origin == "" || t.Destination == "" {
		http.Error(w, "Origin and destination are required", http.StatusBadRequest)
		return
	}
	if t.CargoWeight < 0 {
		http.Error(w, "Cargo weight cannot be negative", http.StatusBadRequest)
		return
	}

	vehicle, exists := h.store.Vehicle(t.VehicleID)
	if !exists {
		http.Error(w, "Vehicle not found", http.StatusBadRequest)
		return
	}
	if _, exists := h.store.Driver(t.DriverID); !exists {
		http.Error(w, "Driver not found", http.StatusBadRequest)
		return
	}
	if t.CargoWeight > vehicle.MaxCapacity {
		http.Error(w, fmt.Sprintf("Cargo weight %.0f kg exceeds vehicle capacity %.0f kg", t.CargoWeight, vehicle.MaxCapacity), http.StatusBadRequest)
		return
	}

	if t.ID == "" {
		t.ID = models.NewID("t")
	} else if _, exists := h.store.Trip(t.ID); exists {
		http.Error(w, "Trip id already exists", http.StatusConflict)
		return
	}
	t.Status = models.TripDraft
	t.CreatedAt = h.now()
	t.CompletedAt = nil

	h.store.CreateTrip(t)
	writeJSON(w, http.StatusCreated, t)
}

// StartTrip dispatches a draft trip after checking the preconditions the
// core deliberately does not: vehicle Available, driver On/Off Duty with
// an unexpired license covering the vehicle type.
func (h *FleetHandler) StartTrip(w http.ResponseWriter, r *http.Request) {
	trip, exists := h.store.Trip(r.PathValue("id"))
	if !exists {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	if trip.Status != models.TripDraft {
		http.Error(w, fmt.Sprintf("Trip is %s, only Draft trips can be dispatched", trip.Status), http.StatusConflict)
		return
	}

	vehicle, exists := h.store.Vehicle(trip.VehicleID)
	if !exists {
		http.Error(w, "Vehicle not found", http.StatusConflict)
		return
	}
	if vehicle.Status != models.VehicleAvailable {
		http.Error(w, fmt.Sprintf("Vehicle is %s, not Available", vehicle.Status), http.StatusConflict)
		return
	}

	driver, exists := h.store.Driver(trip.DriverID)
	if !exists {
		http.Error(w, "Driver not found", http.StatusConflict)
		return
	}
	if !driver.DispatchEligible(h.now()) {
		http.Error(w, "Driver is not dispatch-eligible", http.StatusConflict)
		return
	}
	if !driver.LicensedFor(vehicle.Type) {
		http.Error(w, fmt.Sprintf("Driver is not licensed for %s", vehicle.Type), http.StatusConflict)
		return
	}

	h.store.StartTrip(trip.ID)
	updated, _ := h.store.Trip(trip.ID)
	writeJSON(w, http.StatusOK, updated)
}

// CompleteTrip finishes a dispatched trip with a final odometer reading.
func (h *FleetHandler) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	trip, exists := h.store.Trip(r.PathValue("id"))
	if !exists {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	if trip.Status != models.TripDispatched {
		http.Error(w, fmt.Sprintf("Trip is %s, only Dispatched trips can be completed", trip.Status), http.StatusConflict)
		return
	}

	var req struct {
		FinalOdometer float64 `json:"finalOdometer"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.FinalOdometer < 0 {
		http.Error(w, "Final odometer cannot be negative", http.StatusBadRequest)
		return
	}

	h.store.CompleteTrip(trip.ID, req.FinalOdometer)
	updated, _ := h.store.Trip(trip.ID)
	writeJSON(w, http.StatusOK, updated)
}

// MaintenanceLogs handles GET (list) and POST (open log) on the
// maintenance collection.
func (h *FleetHandler) MaintenanceLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.MaintenanceLogs())
	case http.MethodPost:
		h.addMaintenanceLog(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FleetHandler) addMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	var l models.MaintenanceLog
	if !decodeJSON(w, r, &l) {
		return
	}

	if l.Type == "" {
		http.Error(w, "Maintenance type is required", http.StatusBadRequest)
		return
	}
	if l.Cost < 0 {
		http.Error(w, "Cost cannot be negative", http.StatusBadRequest)
		return
	}
	if _, exists := h.store.Vehicle(l.VehicleID); !exists {
		http.Error(w, "Vehicle not found", http.StatusBadRequest)
		return
	}

	if l.ID == "" {
		l.ID = models.NewID("m")
	} else if _, exists := h.store.MaintenanceLog(l.ID); exists {
		http.Error(w, "Maintenance log id already exists", http.StatusConflict)
		return
	}
	if l.Status == "" {
		l.Status = models.MaintenanceScheduled
	}
	if l.Date.IsZero() {
		l.Date = h.now()
	}

	h.store.AddMaintenanceLog(l)
	writeJSON(w, http.StatusCreated, l)
}

// CompleteMaintenanceLog closes a maintenance log and releases the
// vehicle.
func (h *FleetHandler) CompleteMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, exists := h.store.MaintenanceLog(id); !exists {
		http.Error(w, "Maintenance log not found", http.StatusNotFound)
		return
	}

	h.store.CompleteMaintenanceLog(id)
	updated, _ := h.store.MaintenanceLog(id)
	writeJSON(w, http.StatusOK, updated)
}

// FuelLogs handles GET (list) and POST (add) on the fuel collection.
func (h *FleetHandler) FuelLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.FuelLogs())
	case http.MethodPost:
		h.addFuelLog(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FleetHandler) addFuelLog(w http.ResponseWriter, r *http.Request) {
	var l models.FuelLog
	if !decodeJSON(w, r, &l) {
		return
	}

	if l.Liters < 0 || l.Cost < 0 {
		http.Error(w, "Liters and cost cannot be negative", http.StatusBadRequest)
		return
	}
	if _, exists := h.store.Vehicle(l.VehicleID); !exists {
		http.Error(w, "Vehicle not found", http.StatusBadRequest)
		return
	}

	if l.ID == "" {
		l.ID = models.NewID("f")
	}
	if l.Date.IsZero() {
		l.Date = h.now()
	}

	h.store.AddFuelLog(l)
	writeJSON(w, http.StatusCreated, l)
}
