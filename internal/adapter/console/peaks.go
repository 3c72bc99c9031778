package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/couchcryptid/hydro-report-etl/internal/adapter/csvsink"
)

// PrintUnitHydrographPeaks renders the combined unit hydrograph peaks table.
func PrintUnitHydrographPeaks(out io.Writer, rows []csvsink.UnitHydrographRow, digits int) error {
	t := newPeaksTable("Filename", "Peak flowrate (CFS)", "Peak volume (Ac.ft)")
	for _, r := range rows {
		t.Row(
			filepath.Base(r.File),
			strconv.FormatFloat(r.Peaks.PeakFlowRate, 'f', digits, 64),
			strconv.FormatFloat(r.Peaks.PeakVolume, 'f', digits, 64),
		)
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

// PrintBasinRoutingPeaks renders the combined basin routing peaks table.
func PrintBasinRoutingPeaks(out io.Writer, rows []csvsink.BasinRoutingRow, digits int) error {
	t := newPeaksTable("Filename", "Peak outflow (CFS)", "Peak depth (ft)")
	for _, r := range rows {
		t.Row(
			filepath.Base(r.File),
			strconv.FormatFloat(r.Peaks.PeakOutflow, 'f', digits, 64),
			strconv.FormatFloat(r.Peaks.PeakDepth, 'f', digits, 64),
		)
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func newPeaksTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
