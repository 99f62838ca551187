package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const smallConfig = `
charts:
  format: svg
  rp_ratio:
    width: 400
    height: 200
  gas_production:
    width: 400
    height: 240
  hydrogen:
    width: 400
    height: 300
  gas_reserves:
    width: 400
    height: 300
logging:
  level: warn
`

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "energydash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallConfig), 0o644))

	renderOut, renderFormat = "charts", ""
	exportOut, exportSummary = "energy.xlsx", false
	configOut = ""
	verbose = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "energydash "))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "render", "--out", dir)
	require.NoError(t, err)

	for _, name := range []string{"rp-ratio", "hydrogen", "gas-reserves", "gas-production"} {
		path := filepath.Join(dir, name+".svg")
		assert.Contains(t, out, path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	_, err := execute(t, "render", "--out", t.TempDir(), "--format", "gif")
	assert.ErrorContains(t, err, "unsupported image format")
}

func TestExportCommand(t *testing.T) {
	workbook := filepath.Join(t.TempDir(), "out", "energy.xlsx")

	_, err := execute(t, "export", "--out", workbook, "--summary")
	require.NoError(t, err)

	f, err := excelize.OpenFile(workbook)
	require.NoError(t, err)
	assert.Equal(t, []string{"RP_Ratio_Map", "Hydrogen", "Gas_Reserves", "Production_Map"}, f.GetSheetList())
	require.NoError(t, f.Close())

	summary, err := os.ReadFile(strings.TrimSuffix(workbook, ".xlsx") + ".md")
	require.NoError(t, err)
	assert.Contains(t, string(summary), "# ENERGY DATA SUMMARY")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "format: svg")
	assert.Contains(t, out, "port: 8050")

	path := filepath.Join(t.TempDir(), "saved.yaml")
	_, err = execute(t, "config", "--out", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 0\n"), 0o644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "version"})
	assert.ErrorContains(t, rootCmd.Execute(), "server.port")
}
