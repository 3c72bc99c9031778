// Package extract implements the record extraction pass over rational method
// report files: a single forward scan that finds section boundaries,
// classifies each section's command, and pulls the flow rate and time of
// concentration from nearby lines.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
	"github.com/couchcryptid/hydro-report-etl/internal/template"
)

// parserState is the closed state set of the extraction scan. Transitions are
// exactly those in records(); state is never inferred from field nullability.
type parserState int

const (
	stateSearching parserState = iota
	stateParsingNodes
	stateParsingCommand
	stateParsingStats
	stateStoringData
)

// section accumulates one computation section's fields. A fresh value is
// created at each section header, which also clears the confluence-summary
// flag.
type section struct {
	startLine   int // 0-based index of the section header
	node1       string
	node2       string
	command     domain.CommandKind
	haveCommand bool
	label       string
	flow        *float64
	toc         *float64
	summarySeen bool
}

// Extractor turns one report file into a FileResult. It detects the county,
// resolves the phrase template (through the shared cache), and runs the state
// machine. Extractor holds no per-file state and is safe to reuse.
type Extractor struct {
	templates template.Source
	logger    *slog.Logger
}

// New creates an Extractor.
func New(templates template.Source, logger *slog.Logger) *Extractor {
	return &Extractor{templates: templates, logger: logger}
}

// ExtractFile reads a report file and extracts its records. The file is read
// whole and released before parsing begins; parsing never re-touches the
// filesystem.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (domain.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileResult{}, err
	}

	lines, err := ReadLines(path)
	if err != nil {
		return domain.FileResult{}, err
	}

	county, err := domain.DetectCounty(strings.Join(lines, " "))
	if err != nil {
		return domain.FileResult{}, fmt.Errorf("%s: %w", path, err)
	}
	e.logger.Debug("detected county", "file", path, "county", county)

	tpl, err := e.templates.Resolve(county)
	if err != nil {
		return domain.FileResult{}, fmt.Errorf("%s: %w", path, err)
	}

	records, discarded, err := records(lines, tpl)
	if err != nil {
		return domain.FileResult{}, fmt.Errorf("%s: %w", path, err)
	}

	return domain.FileResult{
		SourceFile:        path,
		County:            county,
		Records:           records,
		DiscardedSections: discarded,
		ProcessedAt:       domain.Now(),
	}, nil
}

// ReadLines reads a report file into lowercased lines. Matching against
// templates is therefore case-insensitive without per-phrase configuration.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	text := strings.ToLower(string(data))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

// records runs the state machine over lowercased lines. It returns the
// extracted records in file order and the count of discarded confluence stubs.
//
// Section boundaries are the delicate part: a section-start phrase seen while
// a section is still open means the previous section never completed. A
// confluence section that never reached its stream-data summary is an expected
// stub and restarts cleanly; anything else is fatal, because guessing values
// for an incomplete section would silently corrupt downstream results.
func records(lines []string, tpl *template.Template) ([]domain.Record, int, error) {
	state := stateSearching
	var sec section
	var out []domain.Record
	discarded := 0

	for i, line := range lines {
		// The line after a section header always carries the node pair,
		// whatever else it may contain.
		if state == stateParsingNodes {
			node1, node2, err := domain.ParseNodeLine(line)
			if err != nil {
				return nil, discarded, fmt.Errorf("line %d: %w", i+1, err)
			}
			sec.node1, sec.node2 = node1, node2
			state = stateParsingCommand
			continue
		}

		if strings.Contains(line, tpl.SectionStart) {
			switch state {
			case stateSearching:
				sec = section{startLine: i}
				state = stateParsingNodes
			default:
				if sec.haveCommand && domain.IsConfluence(sec.command) && !sec.summarySeen {
					// Confluence stub: the report omitted per-stream detail.
					discarded++
					sec = section{startLine: i}
					state = stateParsingNodes
					continue
				}
				if state == stateParsingCommand {
					return nil, discarded, &domain.UnmatchedCommandError{SectionLine: sec.startLine + 1, Line: i + 1}
				}
				return nil, discarded, &domain.InsufficientDataError{
					Line:     i + 1,
					Command:  sec.command,
					FlowRate: sec.flow,
					TOC:      sec.toc,
				}
			}
			continue
		}

		// The stream-data summary is only meaningful inside an open section;
		// stray summary text between sections has no section to mark.
		if (state == stateParsingCommand || state == stateParsingStats) &&
			strings.Contains(line, tpl.ConfluenceSummary) {
			sec.summarySeen = true
		}

		switch state {
		case stateParsingCommand:
			if kind, ok := tpl.CommandFor(line); ok {
				sec.command = kind
				sec.haveCommand = true
				sec.label = domain.FormatLabel(sec.node1, sec.node2, kind)
				state = stateParsingStats
			}
			// Non-matching lines are scanned past; a section that never
			// matches is reported at its boundary.

		case stateParsingStats:
			if domain.IsConfluence(sec.command) && !sec.summarySeen {
				break // ineligible until the stream-data summary appears
			}
			if sec.flow == nil {
				v, matched, err := domain.FindValue(line, i+1, tpl.FlowRate[sec.command])
				if err != nil {
					return nil, discarded, err
				}
				if matched {
					sec.flow = &v
				}
			}
			if sec.toc == nil {
				v, matched, err := domain.FindValue(line, i+1, tpl.TimeOfConcentration[sec.command])
				if err != nil {
					return nil, discarded, err
				}
				if matched {
					sec.toc = &v
				}
			}
			if sec.flow != nil && sec.toc != nil {
				state = stateStoringData
			}
		}

		if state == stateStoringData {
			out = append(out, domain.Record{
				Label:               sec.label,
				FlowRate:            *sec.flow,
				TimeOfConcentration: *sec.toc,
			})
			sec = section{}
			state = stateSearching
		}
	}

	// End of file closes the last section the same way a boundary would.
	switch state {
	case stateParsingNodes:
		return nil, discarded, fmt.Errorf("report ended before node line of section at line %d", sec.startLine+1)
	case stateParsingCommand:
		return nil, discarded, &domain.UnmatchedCommandError{SectionLine: sec.startLine + 1, Line: len(lines)}
	case stateParsingStats:
		if domain.IsConfluence(sec.command) && !sec.summarySeen {
			discarded++
			break
		}
		return nil, discarded, &domain.InsufficientDataError{
			Line:     len(lines),
			Command:  sec.command,
			FlowRate: sec.flow,
			TOC:      sec.toc,
		}
	}

	return out, discarded, nil
}
