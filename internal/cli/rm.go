package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/hydro-report-etl/internal/adapter/console"
	"github.com/couchcryptid/hydro-report-etl/internal/adapter/csvsink"
	"github.com/couchcryptid/hydro-report-etl/internal/observability"
	"github.com/couchcryptid/hydro-report-etl/internal/pipeline"
)

var rmPrint bool

var rmCmd = &cobra.Command{
	Use:   "rm [files or directories]",
	Short: "Extract records from rational method reports",
	Long: `Extract node labels, flow rates, and times of concentration from
rational method report files. Each report produces a CSV next to it with
Nodes, Q, and TC columns.

Examples:
  hydroparse rm study.out
  hydroparse rm ./reports
  hydroparse rm -p -d 2 ./reports`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRM,
}

func runRM(cmd *cobra.Command, args []string) error {
	paths, err := collectReports(args)
	if err != nil {
		return err
	}

	sinks := []pipeline.Sink{csvsink.NewWriter(digits, logger)}
	if rmPrint {
		sinks = append(sinks, console.NewPrinter(os.Stdout, digits))
	}

	p := pipeline.New(newExtractor(), sinks, logger, observability.NewMetrics())

	sum, err := p.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	logger.Info("run complete",
		"processed", sum.Processed,
		"failed", sum.Failed,
		"records", sum.Records,
	)
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d report files failed", sum.Failed, len(paths))
	}
	return nil
}

func init() {
	rmCmd.Flags().BoolVarP(&rmPrint, "print", "p", false, "print extracted records as a table")
}
