package analytics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/models"
)

func TestUtilization(t *testing.T) {
	tests := []struct {
		name     string
		vehicles []models.Vehicle
		expected int
	}{
		{"empty fleet", nil, 0},
		{"only retired vehicles", []models.Vehicle{
			{Status: models.VehicleRetired},
			{Status: models.VehicleRetired},
		}, 0},
		{"half on trip", []models.Vehicle{
			{Status: models.VehicleOnTrip},
			{Status: models.VehicleAvailable},
		}, 50},
		{"retired excluded from denominator", []models.Vehicle{
			{Status: models.VehicleOnTrip},
			{Status: models.VehicleAvailable},
			{Status: models.VehicleRetired},
		}, 50},
		{"two of seven rounds to 29", []models.Vehicle{
			{Status: models.VehicleOnTrip},
			{Status: models.VehicleOnTrip},
			{Status: models.VehicleAvailable},
			{Status: models.VehicleAvailable},
			{Status: models.VehicleAvailable},
			{Status: models.VehicleInShop},
			{Status: models.VehicleAvailable},
		}, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Utilization(tt.vehicles))
		})
	}
}

func TestVehicleStats(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: "v1", Name: "Test Truck", Type: models.VehicleTruck, Odometer: 10000, Status: models.VehicleAvailable},
		{ID: "v2", Name: "Old Van", Type: models.VehicleVan, Odometer: 50000, Status: models.VehicleRetired},
	}
	fuelLogs := []models.FuelLog{
		{ID: "f1", VehicleID: "v1", Liters: 60, Cost: 300},
		{ID: "f2", VehicleID: "v1", Liters: 40, Cost: 200},
		{ID: "f3", VehicleID: "v2", Liters: 50, Cost: 100},
	}
	maintenanceLogs := []models.MaintenanceLog{
		{ID: "m1", VehicleID: "v1", Cost: 1000},
	}

	stats := VehicleStats(vehicles, fuelLogs, maintenanceLogs)
	require.Len(t, stats, 1, "retired vehicles are excluded")

	s := stats[0]
	assert.Equal(t, "v1", s.VehicleID)
	assert.Equal(t, float64(500), s.FuelCost)
	assert.Equal(t, float64(1000), s.MaintenanceCost)
	assert.Equal(t, 100.0, s.Efficiency) // 10000 km / 100 L

	// ROI = (10000*5.5 - (1000+500)) / 80000 * 100 = 66.875 -> 67
	assert.Equal(t, 67, s.ROI)
}

func TestVehicleStats_NoFuelMeansZeroEfficiency(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: "v1", Name: "Dry Truck", Type: models.VehicleTruck, Odometer: 10000},
	}

	stats := VehicleStats(vehicles, nil, nil)
	require.Len(t, stats, 1)
	assert.Equal(t, 0.0, stats[0].Efficiency)
}

func TestVehicleStatusCounts_FixedOrder(t *testing.T) {
	vehicles := []models.Vehicle{
		{Status: models.VehicleAvailable},
		{Status: models.VehicleAvailable},
		{Status: models.VehicleOnTrip},
		{Status: models.VehicleInShop},
	}

	counts := VehicleStatusCounts(vehicles)
	require.Len(t, counts, 4)
	assert.Equal(t, StatusCount{Label: "Available", Count: 2}, counts[0])
	assert.Equal(t, StatusCount{Label: "On Trip", Count: 1}, counts[1])
	assert.Equal(t, StatusCount{Label: "Maintenance (In Shop)", Count: 1}, counts[2])
	assert.Equal(t, StatusCount{Label: "Retired", Count: 0}, counts[3])
}

func TestTripStatusCounts_FixedOrder(t *testing.T) {
	trips := []models.Trip{
		{Status: models.TripCompleted},
		{Status: models.TripDispatched},
		{Status: models.TripDispatched},
		{Status: models.TripCancelled},
	}

	counts := TripStatusCounts(trips)
	require.Len(t, counts, 4)
	assert.Equal(t, StatusCount{Label: "Completed", Count: 1}, counts[0])
	assert.Equal(t, StatusCount{Label: "Active", Count: 2}, counts[1])
	assert.Equal(t, StatusCount{Label: "Draft", Count: 0}, counts[2])
	assert.Equal(t, StatusCount{Label: "Cancelled", Count: 1}, counts[3])
}

func TestLicenseStatus(t *testing.T) {
	now := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	drivers := []models.Driver{
		{ID: "d1", LicenseExpiry: now.AddDate(-1, 0, 0)},             // expired
		{ID: "d2", LicenseExpiry: now.Add(30 * 24 * time.Hour)},      // expiring soon
		{ID: "d3", LicenseExpiry: now.Add(89*24*time.Hour + time.Hour)}, // just inside the window
		{ID: "d4", LicenseExpiry: now.AddDate(2, 0, 0)},              // fine
	}

	alerts := LicenseStatus(drivers, now)
	require.Len(t, alerts.Expired, 1)
	assert.Equal(t, "d1", alerts.Expired[0].ID)

	require.Len(t, alerts.ExpiringSoon, 2)
	assert.Equal(t, "d2", alerts.ExpiringSoon[0].ID)
	assert.Equal(t, "d3", alerts.ExpiringSoon[1].ID)
}

func TestFleetSummary(t *testing.T) {
	now := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	vehicles := []models.Vehicle{
		{Status: models.VehicleOnTrip},
		{Status: models.VehicleAvailable},
	}
	drivers := []models.Driver{
		{LicenseExpiry: now.AddDate(-1, 0, 0)},
		{LicenseExpiry: now.AddDate(2, 0, 0)},
	}
	maintenanceLogs := []models.MaintenanceLog{
		{Status: models.MaintenanceScheduled, Cost: 100},
		{Status: models.MaintenanceCompleted, Cost: 200},
	}
	fuelLogs := []models.FuelLog{{Cost: 50}, {Cost: 25}}

	s := FleetSummary(vehicles, drivers, maintenanceLogs, fuelLogs, now)
	assert.Equal(t, 1, s.ActiveFleet)
	assert.Equal(t, 50, s.Utilization)
	assert.Equal(t, 1, s.OpenMaintenance)
	assert.Equal(t, 1, s.ExpiringLicenses)
	assert.Equal(t, float64(300), s.TotalMaintenanceCost)
	assert.Equal(t, float64(75), s.TotalFuelCost)
}

func TestWriteCSV(t *testing.T) {
	stats := []VehicleStat{
		{Name: "Test Truck", FuelCost: 500, MaintenanceCost: 1000, Efficiency: 100.0, ROI: 67},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, stats))

	expected := "Vehicle,Fuel Cost,Maintenance Cost,Efficiency (km/L),ROI (%)\n" +
		"Test Truck,500,1000,100.0,67\n"
	assert.Equal(t, expected, buf.String())
}
