package handlers

import (
	"net/http"

	"github.com/fleetflow/fleetflow/internal/auth"
	"github.com/fleetflow/fleetflow/internal/fleet"
	"github.com/fleetflow/fleetflow/internal/middleware"
	"github.com/fleetflow/fleetflow/internal/models"
)

// Router assembles the full API surface: auth endpoints, screen-guarded
// fleet and analytics routes, and the health check. Each route is gated
// by the same allow-list that drives navigation.
func Router(store *fleet.Store, authService *auth.Service) http.Handler {
	fleetHandler := NewFleetHandler(store)
	analyticsHandler := NewAnalyticsHandler(store)
	authHandler := NewAuthHandler(authService)
	m := middleware.NewAuthMiddleware(authService)

	guard := func(screen models.Screen, h http.HandlerFunc) http.Handler {
		return m.RequireScreen(screen)(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/session", authHandler.Session)

	mux.Handle("GET /api/overview", guard(models.ScreenOverview, analyticsHandler.Summary))

	mux.Handle("/api/vehicles", guard(models.ScreenVehicles, fleetHandler.Vehicles))
	mux.Handle("PUT /api/vehicles/{id}", guard(models.ScreenVehicles, fleetHandler.UpdateVehicle))
	mux.Handle("DELETE /api/vehicles/{id}", guard(models.ScreenVehicles, fleetHandler.DeleteVehicle))
	mux.Handle("PUT /api/vehicles/{id}/status", guard(models.ScreenVehicles, fleetHandler.UpdateVehicleStatus))

	mux.Handle("/api/drivers", guard(models.ScreenDrivers, fleetHandler.Drivers))
	mux.Handle("PUT /api/drivers/{id}", guard(models.ScreenDrivers, fleetHandler.UpdateDriver))
	mux.Handle("DELETE /api/drivers/{id}", guard(models.ScreenDrivers, fleetHandler.DeleteDriver))

	mux.Handle("/api/trips", guard(models.ScreenTrips, fleetHandler.Trips))
	mux.Handle("POST /api/trips/{id}/start", guard(models.ScreenTrips, fleetHandler.StartTrip))
	mux.Handle("POST /api/trips/{id}/complete", guard(models.ScreenTrips, fleetHandler.CompleteTrip))

	mux.Handle("/api/maintenance", guard(models.ScreenMaintenance, fleetHandler.MaintenanceLogs))
	mux.Handle("POST /api/maintenance/{id}/complete", guard(models.ScreenMaintenance, fleetHandler.CompleteMaintenanceLog))

	mux.Handle("/api/fuel", guard(models.ScreenMaintenance, fleetHandler.FuelLogs))

	mux.Handle("GET /api/analytics/summary", guard(models.ScreenAnalytics, analyticsHandler.Summary))
	mux.Handle("GET /api/analytics/vehicles", guard(models.ScreenAnalytics, analyticsHandler.VehicleStats))
	mux.Handle("GET /api/analytics/vehicle-status", guard(models.ScreenAnalytics, analyticsHandler.VehicleStatusCounts))
	mux.Handle("GET /api/analytics/trip-status", guard(models.ScreenAnalytics, analyticsHandler.TripStatusCounts))
	mux.Handle("GET /api/analytics/licenses", guard(models.ScreenDrivers, analyticsHandler.LicenseAlerts))
	mux.Handle("GET /api/analytics/export.csv", guard(models.ScreenAnalytics, analyticsHandler.ExportCSV))

	return m.Authenticate(mux)
}
