package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRegionsCIS(t *testing.T) {
	rows := []RegionMetricRow{{Region: "CIS", Value: 70.5}}

	out := ExpandRegions(rows, RegionToISO)

	require.Len(t, out, 6)
	want := []string{"RUS", "KAZ", "UZB", "TKM", "KGZ", "TJK"}
	for i, row := range out {
		assert.Equal(t, want[i], row.ISOAlpha)
		assert.Equal(t, 70.5, row.Value)
	}
}

func TestExpandRegionsRowCountPerRegion(t *testing.T) {
	for _, table := range [][]RegionMetricRow{RPRatio, GasProduction} {
		for _, row := range table {
			isos, ok := RegionToISO[row.Region]
			require.True(t, ok, row.Region)

			out := ExpandRegions([]RegionMetricRow{row}, RegionToISO)
			assert.Len(t, out, len(isos), row.Region)
			for _, c := range out {
				assert.Equal(t, row.Value, c.Value, row.Region)
			}
		}
	}
}

func TestExpandRegionsSkipsUnknown(t *testing.T) {
	rows := []RegionMetricRow{
		{Region: "OECD", Value: 1},
		{Region: "North America", Value: 2},
		{Region: "Atlantis", Value: 3},
	}

	out := ExpandRegions(rows, RegionToISO)

	assert.Equal(t, []CountryMetricRow{
		{ISOAlpha: "USA", Value: 2},
		{ISOAlpha: "CAN", Value: 2},
		{ISOAlpha: "MEX", Value: 2},
	}, out)
	assert.Equal(t, []string{"OECD", "Atlantis"}, UnmappedRegions(rows, RegionToISO))
}

func TestExpandRegionsOrder(t *testing.T) {
	mapping := map[string][]string{
		"A": {"AAA", "AAB"},
		"B": {"BBA"},
	}
	rows := []RegionMetricRow{{Region: "B", Value: 1}, {Region: "A", Value: 2}}

	out := ExpandRegions(rows, mapping)

	assert.Equal(t, []CountryMetricRow{
		{ISOAlpha: "BBA", Value: 1},
		{ISOAlpha: "AAA", Value: 2},
		{ISOAlpha: "AAB", Value: 2},
	}, out)
}

func TestExpandRegionsKeepsOverlaps(t *testing.T) {
	out := ExpandRegions(RPRatio, RegionToISO)

	count := 0
	for _, row := range out {
		if row.ISOAlpha == "KAZ" {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestExpandRegionsEmpty(t *testing.T) {
	assert.Empty(t, ExpandRegions(nil, RegionToISO))
	assert.Empty(t, ExpandRegions(RPRatio, nil))
}
