package domain

import (
	"errors"
	"fmt"
)

// The extraction error taxonomy. Every condition here is deterministic given
// the same input and template, so none of them is retryable; callers
// processing a batch isolate failures per file.

// ConfigNotFoundError indicates no phrase template exists for a detected county.
type ConfigNotFoundError struct {
	County County
	Path   string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("no phrase template for county %q at %s", e.County, e.Path)
}

// UnrecognizedCountyError indicates no known county name appears in the report.
type UnrecognizedCountyError struct{}

func (e *UnrecognizedCountyError) Error() string {
	return "could not determine county from report content"
}

// MalformedTemplateError indicates a template document that is missing a
// required mapping or uses an unknown command key.
type MalformedTemplateError struct {
	Path   string
	Reason string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed template %s: %s", e.Path, e.Reason)
}

// InsufficientDataError indicates a section reached the next section boundary
// (or end of file) without both flow rate and time of concentration resolved.
// Line is 1-based. FlowRate and TOC hold whatever partial values were found.
type InsufficientDataError struct {
	Line     int
	Command  CommandKind
	FlowRate *float64
	TOC      *float64
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"failed to determine flow rate and time of concentration before next section header: line=%d command=%s flow=%s toc=%s",
		e.Line, e.Command, formatPartial(e.FlowRate), formatPartial(e.TOC),
	)
}

// UnmatchedCommandError indicates a section whose lines never matched any
// configured command phrase.
type UnmatchedCommandError struct {
	SectionLine int // 1-based line of the section header
	Line        int // 1-based line where the section was abandoned
}

func (e *UnmatchedCommandError) Error() string {
	return fmt.Sprintf("section at line %d never matched a command phrase (abandoned at line %d)", e.SectionLine, e.Line)
}

// NumericExtractionError indicates a configured phrase matched a line from
// which no numeric value could be parsed. This signals a template/report
// mismatch that must be fixed, not guessed around.
type NumericExtractionError struct {
	Line   int
	Phrase string
	Text   string
}

func (e *NumericExtractionError) Error() string {
	return fmt.Sprintf("phrase %q matched line %d but no value could be parsed from %q", e.Phrase, e.Line, e.Text)
}

func formatPartial(v *float64) string {
	if v == nil {
		return "<none>"
	}
	return fmt.Sprintf("%g", *v)
}

// ErrorKind classifies an extraction error for metrics labels and batch
// summaries.
func ErrorKind(err error) string {
	var (
		cnf *ConfigNotFoundError
		urc *UnrecognizedCountyError
		mft *MalformedTemplateError
		ins *InsufficientDataError
		umc *UnmatchedCommandError
		nex *NumericExtractionError
	)
	switch {
	case errors.As(err, &cnf):
		return "config_not_found"
	case errors.As(err, &urc):
		return "unrecognized_county"
	case errors.As(err, &mft):
		return "malformed_template"
	case errors.As(err, &ins):
		return "insufficient_data"
	case errors.As(err, &umc):
		return "unmatched_command"
	case errors.As(err, &nex):
		return "numeric_extraction"
	default:
		return "other"
	}
}
