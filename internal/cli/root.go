// Package cli provides the command-line interface for hydroparse.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/hydro-report-etl/internal/config"
	"github.com/couchcryptid/hydro-report-etl/internal/extract"
	"github.com/couchcryptid/hydro-report-etl/internal/observability"
	"github.com/couchcryptid/hydro-report-etl/internal/template"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	digits int

	// Global config and logger, populated in PersistentPreRunE.
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hydroparse",
	Short: "Extract flow data from CIVILCADD/CIVILDESIGN hydrology reports",
	Long: `Hydroparse extracts node labels, flow rates, and times of concentration
from rational method report files produced by the CIVILCADD/CIVILDESIGN
engineering software, and peak values from unit hydrograph and basin
routing reports.

Results are written as CSV files next to the source reports. County
dialects (San Bernardino, Riverside) are handled through per-county
phrase templates.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

// newExtractor wires the template resolver, cache, and record extractor.
func newExtractor() *extract.Extractor {
	source := template.NewCachedSource(template.NewResolver(cfg.TemplateDir), cfg.TemplateCacheSize)
	return extract.New(source, logger)
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&digits, "digits", "d", 2, "decimal precision of numeric output")

	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(uhCmd)
	rootCmd.AddCommand(brCmd)
	rootCmd.AddCommand(watchCmd)
}
