// Package console renders extraction results as styled terminal tables.
package console

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Printer is a pipeline sink that renders each file's records as a table on
// the terminal.
type Printer struct {
	out    io.Writer
	digits int
}

// NewPrinter creates a console sink writing to out.
func NewPrinter(out io.Writer, digits int) *Printer {
	return &Printer{out: out, digits: digits}
}

// Write renders result to the terminal.
func (p *Printer) Write(_ context.Context, result domain.FileResult) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Nodes", "Q (CFS)", "TC (min)").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range result.Records {
		t.Row(
			r.Label,
			strconv.FormatFloat(r.FlowRate, 'f', p.digits, 64),
			strconv.FormatFloat(r.TimeOfConcentration, 'f', p.digits, 64),
		)
	}

	title := titleStyle.Render(filepath.Base(result.SourceFile))
	if _, err := fmt.Fprintf(p.out, "%s\n%s\n", title, t.Render()); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
