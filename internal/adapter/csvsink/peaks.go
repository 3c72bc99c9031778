package csvsink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/hydro-report-etl/internal/scan"
)

// UnitHydrographRow pairs a report file with its scanned peaks.
type UnitHydrographRow struct {
	File  string
	Peaks scan.UnitHydrographPeaks
}

// BasinRoutingRow pairs a report file with its scanned peaks.
type BasinRoutingRow struct {
	File  string
	Peaks scan.BasinRoutingPeaks
}

// WriteUnitHydrographPeaks writes the combined peaks table for a set of unit
// hydrograph reports into dir.
func WriteUnitHydrographPeaks(dir string, rows []UnitHydrographRow, digits int) error {
	header := []string{"Filename", "Peak flowrate (CFS)", "Peak volume (Ac.ft)"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			filepath.Base(r.File),
			formatValue(r.Peaks.PeakFlowRate, digits),
			formatValue(r.Peaks.PeakVolume, digits),
		})
	}
	return writeTable(filepath.Join(dir, "Unit Hydrograph Results.csv"), header, records)
}

// WriteBasinRoutingPeaks writes the combined peaks table for a set of basin
// routing reports into dir.
func WriteBasinRoutingPeaks(dir string, rows []BasinRoutingRow, digits int) error {
	header := []string{"Filename", "Peak outflow (CFS)", "Peak depth (ft)"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			filepath.Base(r.File),
			formatValue(r.Peaks.PeakOutflow, digits),
			formatValue(r.Peaks.PeakDepth, digits),
		})
	}
	return writeTable(filepath.Join(dir, "Basin Routing Results.csv"), header, records)
}

func writeTable(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return cw.Error()
}
