package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCounty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    County
	}{
		{
			name:    "san bernardino",
			content: "san bernardino county rational method hydrology program",
			want:    SanBernardino,
		},
		{
			name:    "riverside",
			content: "riverside county flood control district hydrology manual",
			want:    Riverside,
		},
		{
			name:    "first match wins when both appear",
			content: "san bernardino study, adjacent to riverside county",
			want:    SanBernardino,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectCounty(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectCounty_Unrecognized(t *testing.T) {
	_, err := DetectCounty("generic hydrology report with no county name")
	var urc *UnrecognizedCountyError
	require.ErrorAs(t, err, &urc)
}

func TestCounty_TemplateFile(t *testing.T) {
	assert.Equal(t, "San Bernardino.yaml", SanBernardino.TemplateFile())
	assert.Equal(t, "Riverside.yaml", Riverside.TemplateFile())
}
