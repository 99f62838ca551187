package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTotals(t *testing.T) {
	rows := WithTotals(HydrogenProduction)

	require.Len(t, rows, len(HydrogenProduction))
	for _, row := range rows {
		assert.Equal(t, row.Blue+row.Green, row.Total, row.Region)
	}
	// source table is untouched
	assert.Zero(t, HydrogenProduction[0].Total)
}

func TestSortByTotalDesc(t *testing.T) {
	rows := SortByTotalDesc(WithTotals(HydrogenProduction))

	require.Len(t, rows, len(HydrogenProduction))
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Total, rows[i].Total)
	}
	assert.Equal(t, "Non-OECD", rows[0].Region)
	assert.Equal(t, "CIS", rows[len(rows)-1].Region)
}

func TestSortByTotalDescStable(t *testing.T) {
	rows := []HydrogenRow{
		{Region: "first", Total: 5},
		{Region: "big", Total: 9},
		{Region: "second", Total: 5},
		{Region: "third", Total: 5},
	}

	out := SortByTotalDesc(rows)

	var regions []string
	for _, row := range out {
		regions = append(regions, row.Region)
	}
	assert.Equal(t, []string{"big", "first", "second", "third"}, regions)
	assert.Equal(t, "first", rows[0].Region)
}

func TestGasReserves(t *testing.T) {
	points := GasReserves()

	require.Len(t, points, 41)
	assert.Equal(t, ReservesPoint{Year: 1980, Reserves: 70.9}, points[0])
	assert.Equal(t, ReservesPoint{Year: 2020, Reserves: 188.1}, points[40])
}

func TestBuild(t *testing.T) {
	ds := Build()

	assert.Len(t, ds.RPMap, 3+6+12+54+12+38+50)
	assert.Len(t, ds.ProductionMap, len(ds.RPMap))
	assert.Len(t, ds.Hydrogen, 9)
	assert.Len(t, ds.GasReserves, 41)
	assert.Equal(t, CountryMetricRow{ISOAlpha: "SAU", Value: 110.4}, ds.RPMap[0])
	assert.Equal(t, CountryMetricRow{ISOAlpha: "USA", Value: 1261.1}, ds.ProductionMap[0])
}
