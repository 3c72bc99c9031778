package console

import (
	"context"
	"strings"
	"testing"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Write(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf, 3)

	result := domain.FileResult{
		SourceFile: "/data/hydrology study.out",
		Records: []domain.Record{
			{Label: "101-102", FlowRate: 3.141, TimeOfConcentration: 17.553},
			{Label: "102-103*", FlowRate: 12.5, TimeOfConcentration: 9},
		},
	}

	require.NoError(t, p.Write(context.Background(), result))

	out := buf.String()
	assert.Contains(t, out, "hydrology study.out")
	assert.Contains(t, out, "Nodes")
	assert.Contains(t, out, "Q (CFS)")
	assert.Contains(t, out, "TC (min)")
	assert.Contains(t, out, "101-102")
	assert.Contains(t, out, "102-103*")
	assert.Contains(t, out, "3.141")
	assert.Contains(t, out, "12.500")
}

func TestPrinter_Write_NoRecords(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf, 3)

	require.NoError(t, p.Write(context.Background(), domain.FileResult{SourceFile: "empty.out"}))
	assert.Contains(t, buf.String(), "empty.out")
}
