// Package analytics computes the read-side aggregates shown on the
// dashboard. Every function is pure: it reads a snapshot of the fleet
// collections and returns fresh values, with no caching and no side
// effects.
package analytics

import (
	"math"
	"time"

	"github.com/fleetflow/fleetflow/internal/models"
)

// Simulated average payload revenue per km by vehicle type.
var revenuePerKm = map[models.VehicleType]float64{
	models.VehicleTruck: 5.5,
	models.VehicleVan:   2.5,
	models.VehicleBike:  1.0,
}

// Simulated acquisition cost by vehicle type.
var acquisitionCost = map[models.VehicleType]float64{
	models.VehicleTruck: 80000,
	models.VehicleVan:   35000,
	models.VehicleBike:  5000,
}

// licenseWarningWindow is how far ahead a license expiry counts as
// "expiring soon".
const licenseWarningWindow = 90 * 24 * time.Hour

// Utilization returns the share of the non-retired fleet currently on a
// trip, rounded to the nearest percent. Zero when no vehicles qualify.
func Utilization(vehicles []models.Vehicle) int {
	onTrip, active := 0, 0
	for _, v := range vehicles {
		if v.Status == models.VehicleRetired {
			continue
		}
		active++
		if v.Status == models.VehicleOnTrip {
			onTrip++
		}
	}
	if active == 0 {
		return 0
	}
	return int(math.Round(float64(onTrip) / float64(active) * 100))
}

// VehicleStat is the per-vehicle financial rollup. Costs are rounded to
// whole dollars, efficiency to one decimal, ROI to the nearest percent.
type VehicleStat struct {
	VehicleID       string  `json:"vehicleId"`
	Name            string  `json:"name"`
	FuelCost        float64 `json:"fuelCost"`
	MaintenanceCost float64 `json:"maintenanceCost"`
	Efficiency      float64 `json:"efficiency"` // km per liter
	ROI             int     `json:"roi"`        // percent
}

// VehicleStats computes fuel efficiency and ROI per non-retired vehicle.
// ROI = (estimated revenue - (maintenance + fuel)) / acquisition cost,
// with revenue estimated as odometer x revenue-per-km for the type.
func VehicleStats(vehicles []models.Vehicle, fuelLogs []models.FuelLog, maintenanceLogs []models.MaintenanceLog) []VehicleStat {
	stats := make([]VehicleStat, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Status == models.VehicleRetired {
			continue
		}

		var fuelCost, liters, maintCost float64
		for _, f := range fuelLogs {
			if f.VehicleID == v.ID {
				fuelCost += f.Cost
				liters += f.Liters
			}
		}
		for _, m := range maintenanceLogs {
			if m.VehicleID == v.ID {
				maintCost += m.Cost
			}
		}

		efficiency := 0.0
		if liters > 0 {
			efficiency = v.Odometer / liters
		}

		perKm, ok := revenuePerKm[v.Type]
		if !ok {
			perKm = 1
		}
		acquisition, ok := acquisitionCost[v.Type]
		if !ok {
			acquisition = 10000
		}
		revenue := v.Odometer * perKm
		roi := (revenue - (maintCost + fuelCost)) / acquisition * 100

		stats = append(stats, VehicleStat{
			VehicleID:       v.ID,
			Name:            v.Name,
			FuelCost:        math.Round(fuelCost),
			MaintenanceCost: math.Round(maintCost),
			Efficiency:      math.Round(efficiency*10) / 10,
			ROI:             int(math.Round(roi)),
		})
	}
	return stats
}

// StatusCount is one labeled bucket of a status distribution.
type StatusCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// VehicleStatusCounts groups vehicles by status in fixed category order.
func VehicleStatusCounts(vehicles []models.Vehicle) []StatusCount {
	counts := map[models.VehicleStatus]int{}
	for _, v := range vehicles {
		counts[v.Status]++
	}
	return []StatusCount{
		{Label: "Available", Count: counts[models.VehicleAvailable]},
		{Label: "On Trip", Count: counts[models.VehicleOnTrip]},
		{Label: "Maintenance (In Shop)", Count: counts[models.VehicleInShop]},
		{Label: "Retired", Count: counts[models.VehicleRetired]},
	}
}

// TripStatusCounts groups trips by status using the dashboard's labels,
// in fixed category order.
func TripStatusCounts(trips []models.Trip) []StatusCount {
	counts := map[models.TripStatus]int{}
	for _, t := range trips {
		counts[t.Status]++
	}
	return []StatusCount{
		{Label: "Completed", Count: counts[models.TripCompleted]},
		{Label: "Active", Count: counts[models.TripDispatched]},
		{Label: "Draft", Count: counts[models.TripDraft]},
		{Label: "Cancelled", Count: counts[models.TripCancelled]},
	}
}

// LicenseAlerts partitions drivers whose licenses are expired or expire
// within the warning window.
type LicenseAlerts struct {
	Expired      []models.Driver `json:"expired"`
	ExpiringSoon []models.Driver `json:"expiringSoon"`
}

// LicenseStatus computes license alerts relative to now.
func LicenseStatus(drivers []models.Driver, now time.Time) LicenseAlerts {
	var alerts LicenseAlerts
	for _, d := range drivers {
		switch {
		case d.LicenseExpiry.Before(now):
			alerts.Expired = append(alerts.Expired, d)
		case d.LicenseExpiry.Sub(now) < licenseWarningWindow:
			alerts.ExpiringSoon = append(alerts.ExpiringSoon, d)
		}
	}
	return alerts
}

// Summary is the command-center KPI snapshot.
type Summary struct {
	ActiveFleet          int     `json:"activeFleet"`
	Utilization          int     `json:"utilization"` // percent
	OpenMaintenance      int     `json:"openMaintenance"`
	ExpiringLicenses     int     `json:"expiringLicenses"`
	TotalFuelCost        float64 `json:"totalFuelCost"`
	TotalMaintenanceCost float64 `json:"totalMaintenanceCost"`
}

// FleetSummary computes the overview KPIs.
func FleetSummary(vehicles []models.Vehicle, drivers []models.Driver, maintenanceLogs []models.MaintenanceLog, fuelLogs []models.FuelLog, now time.Time) Summary {
	s := Summary{Utilization: Utilization(vehicles)}
	for _, v := range vehicles {
		if v.Status == models.VehicleOnTrip {
			s.ActiveFleet++
		}
	}
	for _, m := range maintenanceLogs {
		if m.Status != models.MaintenanceCompleted {
			s.OpenMaintenance++
		}
		s.TotalMaintenanceCost += m.Cost
	}
	for _, f := range fuelLogs {
		s.TotalFuelCost += f.Cost
	}
	alerts := LicenseStatus(drivers, now)
	s.ExpiringLicenses = len(alerts.Expired) + len(alerts.ExpiringSoon)
	return s
}
