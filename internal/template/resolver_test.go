package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

const minimalTemplate = `
commands:
  INITIAL_AREA: Initial Area Evaluation
  CONFLUENCE_MINOR: [confluence of minor streams, minor stream confluence]

flowrate:
  INITIAL_AREA: total runoff =
  CONFLUENCE_MINOR: total flow rate =

time-of-concentration:
  INITIAL_AREA: initial area time of concentration =
  CONFLUENCE_MINOR: time of concentration =

new-section-text: process from point/station
confluence-summary-text: summary of stream data
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.SanBernardino.TemplateFile())
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestResolve_EmbeddedDefaults(t *testing.T) {
	r := NewResolver("")

	for _, county := range []domain.County{domain.SanBernardino, domain.Riverside} {
		t.Run(county.DisplayName(), func(t *testing.T) {
			tpl, err := r.Resolve(county)
			require.NoError(t, err)

			assert.Equal(t, county, tpl.County)
			assert.Equal(t, "process from point/station", tpl.SectionStart)
			assert.Equal(t, "summary of stream data", tpl.ConfluenceSummary)
			for _, kind := range domain.AllCommandKinds() {
				assert.NotEmpty(t, tpl.Commands[kind], "command phrases for %s", kind)
				assert.NotEmpty(t, tpl.FlowRate[kind], "flowrate phrases for %s", kind)
				assert.NotEmpty(t, tpl.TimeOfConcentration[kind], "toc phrases for %s", kind)
			}
		})
	}
}

func TestResolve_ScalarAndListPhrasesEquivalent(t *testing.T) {
	dir := writeTemplate(t, minimalTemplate)
	tpl, err := NewResolver(dir).Resolve(domain.SanBernardino)
	require.NoError(t, err)

	// A scalar phrase normalizes to a one-element list; phrases lowercase.
	assert.Equal(t, []string{"initial area evaluation"}, tpl.Commands[domain.InitialArea])
	assert.Equal(t, []string{"confluence of minor streams", "minor stream confluence"}, tpl.Commands[domain.ConfluenceMinor])
}

func TestResolve_Idempotent(t *testing.T) {
	r := NewResolver("")

	first, err := r.Resolve(domain.Riverside)
	require.NoError(t, err)
	second, err := r.Resolve(domain.Riverside)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestResolve_MissingTemplate(t *testing.T) {
	r := NewResolver(t.TempDir())

	_, err := r.Resolve(domain.Riverside)
	var cnf *domain.ConfigNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, domain.Riverside, cnf.County)
}

func TestResolve_UnknownCommandKey(t *testing.T) {
	dir := writeTemplate(t, `
commands:
  BOGUS_COMMAND: some phrase
flowrate:
  BOGUS_COMMAND: x =
time-of-concentration:
  BOGUS_COMMAND: y =
new-section-text: process from point/station
confluence-summary-text: summary of stream data
`)

	_, err := NewResolver(dir).Resolve(domain.SanBernardino)
	var mft *domain.MalformedTemplateError
	require.ErrorAs(t, err, &mft)
	assert.Contains(t, mft.Reason, "BOGUS_COMMAND")
}

func TestResolve_MissingFlowratePhrases(t *testing.T) {
	dir := writeTemplate(t, `
commands:
  INITIAL_AREA: initial area evaluation
flowrate: {}
time-of-concentration:
  INITIAL_AREA: tc =
new-section-text: process from point/station
confluence-summary-text: summary of stream data
`)

	_, err := NewResolver(dir).Resolve(domain.SanBernardino)
	var mft *domain.MalformedTemplateError
	require.ErrorAs(t, err, &mft)
	assert.Contains(t, mft.Reason, "flowrate")
}

func TestResolve_MissingSectionText(t *testing.T) {
	dir := writeTemplate(t, `
commands:
  INITIAL_AREA: initial area evaluation
flowrate:
  INITIAL_AREA: total runoff =
time-of-concentration:
  INITIAL_AREA: tc =
confluence-summary-text: summary of stream data
`)

	_, err := NewResolver(dir).Resolve(domain.SanBernardino)
	var mft *domain.MalformedTemplateError
	require.ErrorAs(t, err, &mft)
	assert.Contains(t, mft.Reason, "new-section-text")
}

func TestResolve_InvalidYAML(t *testing.T) {
	dir := writeTemplate(t, "commands: [unbalanced")

	_, err := NewResolver(dir).Resolve(domain.SanBernardino)
	var mft *domain.MalformedTemplateError
	require.ErrorAs(t, err, &mft)
}

func TestCommandFor_PrecedenceIsDeclarationOrder(t *testing.T) {
	tpl := &Template{
		Commands: map[domain.CommandKind][]string{
			domain.StreetFlow:      {"street flow travel time"},
			domain.ChannelImproved: {"travel time"},
		},
	}

	// Both phrases match; the earlier kind in declaration order wins.
	kind, ok := tpl.CommandFor("street flow travel time through cross section")
	require.True(t, ok)
	assert.Equal(t, domain.StreetFlow, kind)

	kind, ok = tpl.CommandFor("improved channel travel time computed")
	require.True(t, ok)
	assert.Equal(t, domain.ChannelImproved, kind)

	_, ok = tpl.CommandFor("no known phrase here")
	assert.False(t, ok)
}
