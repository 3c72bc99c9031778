package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs points the package logger at a buffer for one test.
func captureLogs(t *testing.T) *strings.Builder {
	t.Helper()
	var buf strings.Builder
	prev := logger
	logger = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { logger = prev })
	return &buf
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestCollectReports_ExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "study a.out")
	b := touch(t, dir, "study b.OUT")
	touch(t, dir, "results.csv")
	touch(t, dir, "notes.txt")

	paths, err := collectReports([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, paths)
}

func TestCollectReports_NaturalOrder(t *testing.T) {
	dir := t.TempDir()
	p10 := touch(t, dir, "basin10.out")
	p2 := touch(t, dir, "basin2.out")
	p1 := touch(t, dir, "basin1.out")

	paths, err := collectReports([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{p1, p2, p10}, paths)
}

func TestCollectReports_WarnsOnCSVArguments(t *testing.T) {
	dir := t.TempDir()
	out := touch(t, dir, "study.out")
	csv := touch(t, dir, "study.csv")
	logs := captureLogs(t)

	paths, err := collectReports([]string{csv, out})
	require.NoError(t, err)

	assert.Equal(t, []string{out}, paths, "a csv argument must not be parsed as a report")
	assert.Contains(t, logs.String(), "skipping csv")
	assert.Contains(t, logs.String(), "study.csv")
}

func TestCollectReports_MissingPath(t *testing.T) {
	_, err := collectReports([]string{"/no/such/file.out"})
	require.Error(t, err)
}

func TestCollectReports_EmptyDirectory(t *testing.T) {
	_, err := collectReports([]string{t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report files")
}

func TestOutputDir(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.out")
	b := touch(t, dir, "b.out")

	got, err := outputDir([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestOutputDir_MultipleParents(t *testing.T) {
	a := touch(t, t.TempDir(), "a.out")
	b := touch(t, t.TempDir(), "b.out")

	_, err := outputDir([]string{a, b})
	require.Error(t, err)
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"numeric runs compare numerically", "file2", "file10", true},
		{"plain lexical", "alpha", "beta", true},
		{"case insensitive", "Basin2", "basin10", true},
		{"equal prefix shorter first", "file", "file1", true},
		{"reverse", "file10", "file2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, naturalLess(tt.a, tt.b))
		})
	}
}
