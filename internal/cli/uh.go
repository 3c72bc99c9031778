package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/hydro-report-etl/internal/adapter/console"
	"github.com/couchcryptid/hydro-report-etl/internal/adapter/csvsink"
	"github.com/couchcryptid/hydro-report-etl/internal/extract"
	"github.com/couchcryptid/hydro-report-etl/internal/scan"
)

var uhSave bool

var uhCmd = &cobra.Command{
	Use:   "uh [files or directories]",
	Short: "Extract peak flow and volume from unit hydrograph reports",
	Long: `Scan unit hydrograph report files for their peak flow rate and peak
volume, print the combined results table, and optionally save it as
"Unit Hydrograph Results.csv" next to the reports.

Examples:
  hydroparse uh ./hydrographs
  hydroparse uh -s -d 2 ./hydrographs`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUH,
}

func runUH(cmd *cobra.Command, args []string) error {
	paths, err := collectReports(args)
	if err != nil {
		return err
	}
	dir, err := outputDir(paths)
	if err != nil {
		return err
	}

	rows := make([]csvsink.UnitHydrographRow, 0, len(paths))
	for _, path := range paths {
		lines, err := extract.ReadLines(path)
		if err != nil {
			return err
		}
		peaks, err := scan.UnitHydrograph(lines)
		if err != nil {
			logger.Error("unit hydrograph scan failed", "file", path, "error", err)
			return err
		}
		rows = append(rows, csvsink.UnitHydrographRow{File: path, Peaks: peaks})
	}

	if err := console.PrintUnitHydrographPeaks(os.Stdout, rows, digits); err != nil {
		return err
	}

	if uhSave {
		if err := csvsink.WriteUnitHydrographPeaks(dir, rows, digits); err != nil {
			return err
		}
		logger.Info("combined results saved", "dir", dir, "reports", len(rows))
	}
	return nil
}

func init() {
	uhCmd.Flags().BoolVarP(&uhSave, "save", "s", false, "save the combined results CSV")
}
