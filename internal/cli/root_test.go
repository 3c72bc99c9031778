package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsFlagDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("digits")
	require.NotNil(t, flag)
	assert.Equal(t, "2", flag.DefValue)
}

func TestUH_ReportsMustShareDirectory(t *testing.T) {
	captureLogs(t)
	a := touch(t, t.TempDir(), "a.out")
	b := touch(t, t.TempDir(), "b.out")

	err := runUH(uhCmd, []string{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single directory")
}

func TestBR_ReportsMustShareDirectory(t *testing.T) {
	captureLogs(t)
	a := touch(t, t.TempDir(), "a.out")
	b := touch(t, t.TempDir(), "b.out")

	err := runBR(brCmd, []string{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single directory")
}
