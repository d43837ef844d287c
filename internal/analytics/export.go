package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the per-vehicle stats as the analytics export the
// dashboard offers for download.
func WriteCSV(w io.Writer, stats []VehicleStat) error {
	cw := csv.NewWriter(w)

	header := []string{"Vehicle", "Fuel Cost", "Maintenance Cost", "Efficiency (km/L)", "ROI (%)"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range stats {
		row := []string{
			s.Name,
			fmt.Sprintf("%.0f", s.FuelCost),
			fmt.Sprintf("%.0f", s.MaintenanceCost),
			fmt.Sprintf("%.1f", s.Efficiency),
			fmt.Sprintf("%d", s.ROI),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
