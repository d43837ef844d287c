package fleet

import (
	"time"

	"github.com/fleetflow/fleetflow/internal/models"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func stamp(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

func stampPtr(value string) *time.Time {
	t := stamp(value)
	return &t
}

// DefaultSeed returns the built-in demo fleet used when a collection has
// no stored value. Deployments that want to start empty pass an empty
// Snapshot to Open instead.
func DefaultSeed() Snapshot {
	return Snapshot{
		Vehicles: []models.Vehicle{
			{ID: "v1", Name: "Freightliner M2", Type: models.VehicleTruck, LicensePlate: "TRK-1001", MaxCapacity: 8000, Odometer: 124500, Status: models.VehicleOnTrip, Region: "North", LastService: day("2025-12-10")},
			{ID: "v2", Name: "Mercedes Sprinter", Type: models.VehicleVan, LicensePlate: "VAN-2034", MaxCapacity: 1500, Odometer: 67200, Status: models.VehicleAvailable, Region: "South", LastService: day("2026-01-15")},
			{ID: "v3", Name: "Isuzu NPR", Type: models.VehicleTruck, LicensePlate: "TRK-1042", MaxCapacity: 5500, Odometer: 89300, Status: models.VehicleInShop, Region: "East", LastService: day("2026-02-01")},
			{ID: "v4", Name: "Ford Transit", Type: models.VehicleVan, LicensePlate: "VAN-2078", MaxCapacity: 1200, Odometer: 43100, Status: models.VehicleAvailable, Region: "West", LastService: day("2026-01-28")},
			{ID: "v5", Name: "Honda PCX", Type: models.VehicleBike, LicensePlate: "BKE-3012", MaxCapacity: 30, Odometer: 15200, Status: models.VehicleOnTrip, Region: "Central", LastService: day("2026-02-10")},
			{ID: "v6", Name: "Volvo FH16", Type: models.VehicleTruck, LicensePlate: "TRK-1088", MaxCapacity: 12000, Odometer: 210400, Status: models.VehicleAvailable, Region: "North", LastService: day("2025-11-20")},
			{ID: "v7", Name: "Peugeot Partner", Type: models.VehicleVan, LicensePlate: "VAN-2091", MaxCapacity: 800, Odometer: 52600, Status: models.VehicleRetired, Region: "South", LastService: day("2025-08-05")},
			{ID: "v8", Name: "Yamaha NMAX", Type: models.VehicleBike, LicensePlate: "BKE-3045", MaxCapacity: 25, Odometer: 8900, Status: models.VehicleAvailable, Region: "Central", LastService: day("2026-02-14")},
		},
		Drivers: []models.Driver{
			{ID: "d1", Name: "Alex Martinez", LicenseExpiry: day("2027-06-15"), LicenseCategories: []models.VehicleType{models.VehicleTruck, models.VehicleVan}, Status: models.DriverOnTrip, SafetyScore: 92, TripsCompleted: 187, Phone: "+1 555-0101"},
			{ID: "d2", Name: "Sarah Chen", LicenseExpiry: day("2026-03-20"), LicenseCategories: []models.VehicleType{models.VehicleVan, models.VehicleBike}, Status: models.DriverOnDuty, SafetyScore: 97, TripsCompleted: 234, Phone: "+1 555-0102"},
			{ID: "d3", Name: "James Okoro", LicenseExpiry: day("2025-12-01"), LicenseCategories: []models.VehicleType{models.VehicleTruck}, Status: models.DriverOffDuty, SafetyScore: 78, TripsCompleted: 145, Phone: "+1 555-0103"},
			{ID: "d4", Name: "Maria Santos", LicenseExpiry: day("2028-01-10"), LicenseCategories: []models.VehicleType{models.VehicleTruck, models.VehicleVan, models.VehicleBike}, Status: models.DriverOnTrip, SafetyScore: 95, TripsCompleted: 312, Phone: "+1 555-0104"},
			{ID: "d5", Name: "Tom Wilson", LicenseExpiry: day("2026-08-30"), LicenseCategories: []models.VehicleType{models.VehicleVan}, Status: models.DriverSuspended, SafetyScore: 54, TripsCompleted: 89, Phone: "+1 555-0105"},
			{ID: "d6", Name: "Lena Petrova", LicenseExpiry: day("2027-11-22"), LicenseCategories: []models.VehicleType{models.VehicleTruck, models.VehicleVan}, Status: models.DriverOnDuty, SafetyScore: 88, TripsCompleted: 201, Phone: "+1 555-0106"},
		},
		Trips: []models.Trip{
			{ID: "t1", VehicleID: "v1", DriverID: "d1", Origin: "Warehouse A", Destination: "Port Terminal", CargoWeight: 6200, Status: models.TripDispatched, CreatedAt: stamp("2026-02-20T08:30:00")},
			{ID: "t2", VehicleID: "v5", DriverID: "d4", Origin: "Hub Central", Destination: "District 5 Depot", CargoWeight: 22, Status: models.TripDispatched, CreatedAt: stamp("2026-02-20T09:15:00")},
			{ID: "t3", VehicleID: "v2", DriverID: "d2", Origin: "Factory B", Destination: "Retail Store 12", CargoWeight: 980, Status: models.TripCompleted, CreatedAt: stamp("2026-02-19T07:00:00"), CompletedAt: stampPtr("2026-02-19T14:30:00")},
			{ID: "t4", VehicleID: "v6", DriverID: "d6", Origin: "Distribution Center", Destination: "Airport Cargo", CargoWeight: 9500, Status: models.TripDraft, CreatedAt: stamp("2026-02-20T10:00:00")},
			{ID: "t5", VehicleID: "v4", DriverID: "d3", Origin: "Supplier C", Destination: "Warehouse A", CargoWeight: 750, Status: models.TripCompleted, CreatedAt: stamp("2026-02-18T06:00:00"), CompletedAt: stampPtr("2026-02-18T11:45:00")},
			{ID: "t6", VehicleID: "v2", DriverID: "d2", Origin: "Port Terminal", Destination: "Cold Storage", CargoWeight: 1100, Status: models.TripCancelled, CreatedAt: stamp("2026-02-17T13:00:00")},
		},
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "m1", VehicleID: "v3", Type: "Oil Change", Description: "Scheduled 10k km oil change", Cost: 320, Date: day("2026-02-18"), Status: models.MaintenanceInProgress},
			{ID: "m2", VehicleID: "v1", Type: "Tire Replacement", Description: "Front axle tire replacement", Cost: 1200, Date: day("2026-02-10"), Status: models.MaintenanceCompleted},
			{ID: "m3", VehicleID: "v6", Type: "Brake Inspection", Description: "Annual brake system inspection", Cost: 450, Date: day("2026-02-15"), Status: models.MaintenanceCompleted},
			{ID: "m4", VehicleID: "v2", Type: "AC Repair", Description: "Compressor replacement", Cost: 890, Date: day("2026-02-20"), Status: models.MaintenanceScheduled},
			{ID: "m5", VehicleID: "v7", Type: "Engine Overhaul", Description: "Major engine rebuild before retirement", Cost: 4500, Date: day("2025-07-20"), Status: models.MaintenanceCompleted},
		},
		FuelLogs: []models.FuelLog{
			{ID: "f1", VehicleID: "v1", Liters: 120, Cost: 198, Date: day("2026-02-19"), Odometer: 124300},
			{ID: "f2", VehicleID: "v2", Liters: 55, Cost: 90.75, Date: day("2026-02-18"), Odometer: 67100},
			{ID: "f3", VehicleID: "v5", Liters: 8, Cost: 13.20, Date: day("2026-02-19"), Odometer: 15100},
			{ID: "f4", VehicleID: "v6", Liters: 180, Cost: 297, Date: day("2026-02-17"), Odometer: 210200},
			{ID: "f5", VehicleID: "v4", Liters: 45, Cost: 74.25, Date: day("2026-02-16"), Odometer: 42900},
			{ID: "f6", VehicleID: "v1", Liters: 115, Cost: 189.75, Date: day("2026-02-15"), Odometer: 124000},
			{ID: "f7", VehicleID: "v2", Liters: 50, Cost: 82.50, Date: day("2026-02-14"), Odometer: 66800},
		},
	}
}
