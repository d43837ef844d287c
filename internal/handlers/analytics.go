package handlers

import (
	"net/http"
	"time"

	"github.com/fleetflow/fleetflow/internal/analytics"
	"github.com/fleetflow/fleetflow/internal/fleet"
)

// AnalyticsHandler serves the derived views. Everything here is
// recomputed from a fresh snapshot on every request.
type AnalyticsHandler struct {
	store *fleet.Store
	now   func() time.Time
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(store *fleet.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, now: time.Now}
}

// Summary serves the command-center KPI snapshot.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	writeJSON(w, http.StatusOK, analytics.FleetSummary(snap.Vehicles, snap.Drivers, snap.MaintenanceLogs, snap.FuelLogs, h.now()))
}

// VehicleStats serves the per-vehicle fuel efficiency and ROI rollup.
func (h *AnalyticsHandler) VehicleStats(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	writeJSON(w, http.StatusOK, analytics.VehicleStats(snap.Vehicles, snap.FuelLogs, snap.MaintenanceLogs))
}

// VehicleStatusCounts serves the fleet status distribution.
func (h *AnalyticsHandler) VehicleStatusCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.VehicleStatusCounts(h.store.Vehicles()))
}

// TripStatusCounts serves the trip completion breakdown.
func (h *AnalyticsHandler) TripStatusCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.TripStatusCounts(h.store.Trips()))
}

// LicenseAlerts serves expired and expiring-soon driver licenses.
func (h *AnalyticsHandler) LicenseAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.LicenseStatus(h.store.Drivers(), h.now()))
}

// ExportCSV serves the analytics table as a CSV download.
func (h *AnalyticsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	stats := analytics.VehicleStats(snap.Vehicles, snap.FuelLogs, snap.MaintenanceLogs)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="fleet_analytics.csv"`)
	if err := analytics.WriteCSV(w, stats); err != nil {
		http.Error(w, "Failed to write CSV", http.StatusInternalServerError)
	}
}
