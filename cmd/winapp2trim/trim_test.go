package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixture only uses criteria that evaluate the same on any host: an
// unconditional entry always retains, and a DetectOS lower bound of 999
// always discards.
const cliDoc = `; Version: 240101

[Keep Me *]
FileKey1=%Temp%|*.*

[Drop Me *]
DetectOS=999.0|
FileKey1=%Temp%|*.old
`

func TestTrimCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.ini")
	output := filepath.Join(dir, "out.ini")
	require.NoError(t, os.WriteFile(input, []byte(cliDoc), 0o644))

	rootCmd.SetArgs([]string{"trim", "-q", "-i", input, "-o", output})
	require.NoError(t, rootCmd.Execute())

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[Keep Me *]")
	assert.NotContains(t, string(out), "[Drop Me *]")
	assert.Contains(t, string(out), "; Version: 240101")
}

func TestTrimCommandShowDiff(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.ini")
	output := filepath.Join(dir, "out.ini")
	require.NoError(t, os.WriteFile(input, []byte(cliDoc), 0o644))

	rootCmd.SetArgs([]string{"trim", "-q", "-i", input, "-o", output, "--show-diff"})
	require.NoError(t, rootCmd.Execute())

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "[Drop Me *]")
}

func TestTrimCommandEmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.ini")
	require.NoError(t, os.WriteFile(input, []byte("; empty\n"), 0o644))

	rootCmd.SetArgs([]string{"trim", "-q", "-i", input, "-o", filepath.Join(dir, "out.ini")})
	assert.Error(t, rootCmd.Execute())
}
