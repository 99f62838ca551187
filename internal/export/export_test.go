package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"energydash/internal/energy"
)

func TestWriteWorkbook(t *testing.T) {
	ds := energy.Build()

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, ds))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetRPRatio, SheetHydrogen, SheetGasReserves, SheetProductionMap}, f.GetSheetList())

	rows, err := f.GetRows(SheetRPRatio)
	require.NoError(t, err)
	require.Len(t, rows, len(ds.RPMap)+1)
	assert.Equal(t, []string{"iso_alpha", "R/P Ratio"}, rows[0])
	assert.Equal(t, []string{"SAU", "110.4"}, rows[1])

	rows, err = f.GetRows(SheetHydrogen)
	require.NoError(t, err)
	require.Len(t, rows, len(ds.Hydrogen)+1)
	assert.Equal(t, []string{"Region", "Blue", "Green", "Total"}, rows[0])
	assert.Equal(t, "Non-OECD", rows[1][0])

	rows, err = f.GetRows(SheetGasReserves)
	require.NoError(t, err)
	require.Len(t, rows, 42)
	assert.Equal(t, []string{"1980", "70.9"}, rows[1])
	assert.Equal(t, []string{"2020", "188.1"}, rows[41])

	rows, err = f.GetRows(SheetProductionMap)
	require.NoError(t, err)
	assert.Equal(t, []string{"USA", "1261.1"}, rows[1])
}

func TestWriteWorkbookEmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, &energy.Dataset{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetHydrogen)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, WriteSummary(&buf, energy.Build(), now))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# ENERGY DATA SUMMARY\n"))
	assert.Contains(t, out, "**Reserves growth 1980-2020**: 165.3%")
	assert.Contains(t, out, "| 1 | Middle East | 110.4 | 12 |")
	assert.Contains(t, out, "| 1 | North America | 1261.1 | 3 |")
	assert.Contains(t, out, "| 1 | Non-OECD | 2551.2 | 93.8 | 2645.0 |")
	assert.Contains(t, out, "*Generated by energydash - 5 March 2024*")
}
