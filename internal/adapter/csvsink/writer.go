// Package csvsink writes extraction results to CSV files next to their
// source reports.
package csvsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

// Writer is a pipeline sink that writes one CSV per report file. The output
// file keeps the report's base name with a .csv extension.
type Writer struct {
	digits int
	logger *slog.Logger
}

// NewWriter creates a CSV sink. digits controls the decimal precision of the
// numeric columns.
func NewWriter(digits int, logger *slog.Logger) *Writer {
	return &Writer{digits: digits, logger: logger}
}

// Write emits result as <source>.csv with a Nodes,Q,TC header.
func (w *Writer) Write(_ context.Context, result domain.FileResult) error {
	path := csvPath(result.SourceFile)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"Nodes", "Q", "TC"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range result.Records {
		row := []string{
			r.Label,
			formatValue(r.FlowRate, w.digits),
			formatValue(r.TimeOfConcentration, w.digits),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	w.logger.Info("csv written", "file", path, "records", len(result.Records))
	return nil
}

// csvPath swaps the source file's extension for .csv.
func csvPath(source string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + ".csv"
}

func formatValue(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}
