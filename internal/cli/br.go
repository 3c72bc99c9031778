package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/hydro-report-etl/internal/adapter/console"
	"github.com/couchcryptid/hydro-report-etl/internal/adapter/csvsink"
	"github.com/couchcryptid/hydro-report-etl/internal/extract"
	"github.com/couchcryptid/hydro-report-etl/internal/scan"
)

var brSave bool

var brCmd = &cobra.Command{
	Use:   "br [files or directories]",
	Short: "Extract peak outflow and depth from basin routing reports",
	Long: `Scan detention basin routing report files for their peak outflow and
peak basin depth, print the combined results table, and optionally save
it as "Basin Routing Results.csv" next to the reports.

Reports without a routing table (basin runs that only combine
hydrographs) are skipped with a warning.

Examples:
  hydroparse br ./basins
  hydroparse br -s -d 2 ./basins`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBR,
}

func runBR(cmd *cobra.Command, args []string) error {
	paths, err := collectReports(args)
	if err != nil {
		return err
	}
	dir, err := outputDir(paths)
	if err != nil {
		return err
	}

	rows := make([]csvsink.BasinRoutingRow, 0, len(paths))
	for _, path := range paths {
		lines, err := extract.ReadLines(path)
		if err != nil {
			return err
		}
		peaks, found, err := scan.BasinRouting(lines)
		if err != nil {
			logger.Error("basin routing scan failed", "file", path, "error", err)
			return err
		}
		if !found {
			logger.Warn("no routing table, skipping", "file", path)
			continue
		}
		rows = append(rows, csvsink.BasinRoutingRow{File: path, Peaks: peaks})
	}

	if err := console.PrintBasinRoutingPeaks(os.Stdout, rows, digits); err != nil {
		return err
	}

	if brSave {
		if err := csvsink.WriteBasinRoutingPeaks(dir, rows, digits); err != nil {
			return err
		}
		logger.Info("combined results saved", "dir", dir, "reports", len(rows))
	}
	return nil
}

func init() {
	brCmd.Flags().BoolVarP(&brSave, "save", "s", false, "save the combined results CSV")
}
