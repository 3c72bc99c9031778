package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	flow := 3.14
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config not found", &ConfigNotFoundError{County: Riverside, Path: "/etc/templates"}, "config_not_found"},
		{"unrecognized county", &UnrecognizedCountyError{}, "unrecognized_county"},
		{"malformed template", &MalformedTemplateError{Path: "x.yaml", Reason: "no commands"}, "malformed_template"},
		{"insufficient data", &InsufficientDataError{Line: 42, Command: InitialArea, FlowRate: &flow}, "insufficient_data"},
		{"unmatched command", &UnmatchedCommandError{SectionLine: 10, Line: 30}, "unmatched_command"},
		{"numeric extraction", &NumericExtractionError{Line: 5, Phrase: "tc =", Text: "tc = n/a"}, "numeric_extraction"},
		{"wrapped errors classify through", fmt.Errorf("file x: %w", &UnrecognizedCountyError{}), "unrecognized_county"},
		{"unknown error", fmt.Errorf("disk on fire"), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}

func TestInsufficientDataError_ReportsPartials(t *testing.T) {
	flow := 12.5
	err := &InsufficientDataError{Line: 88, Command: StreetFlow, FlowRate: &flow}

	msg := err.Error()
	assert.Contains(t, msg, "line=88")
	assert.Contains(t, msg, "command=STREET_FLOW")
	assert.Contains(t, msg, "flow=12.5")
	assert.Contains(t, msg, "toc=<none>")
}
