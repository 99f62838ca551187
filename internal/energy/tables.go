package energy

// RPRatio is the reserves-to-production ratio (years) per region.
var RPRatio = []RegionMetricRow{
	{Region: "Middle East", Value: 110.4},
	{Region: "CIS", Value: 70.5},
	{Region: "Africa", Value: 55.7},
	{Region: "S. & Cent. America", Value: 51.7},
	{Region: "Asia Pacific", Value: 25.4},
	{Region: "Europe", Value: 14.5},
	{Region: "North America", Value: 13.7},
}

// HydrogenProduction is blue and green hydrogen production (TWh) per region.
// OECD and Non-OECD are aggregates and have no country mapping.
var HydrogenProduction = []HydrogenRow{
	{Region: "North America", Blue: 2091.6, Green: 19.4},
	{Region: "S. & Cent. America", Blue: 0, Green: 1.1},
	{Region: "Europe", Blue: 44.1, Green: 31.6},
	{Region: "CIS", Blue: 0, Green: 0},
	{Region: "Middle East", Blue: 621.9, Green: 0.1},
	{Region: "Africa", Blue: 0, Green: 1.7},
	{Region: "Asia Pacific", Blue: 1929.7, Green: 93.6},
	{Region: "OECD", Blue: 2136.1, Green: 53.9},
	{Region: "Non-OECD", Blue: 2551.2, Green: 93.8},
}

// GasReservesFirstYear is the year of the first GasReserves value.
const GasReservesFirstYear = 1980

var gasReserves = []float64{
	70.9, 73.5, 75.8, 77.4, 80.2, 82.4, 88.3, 90.8, 94.8, 105.5,
	108.4, 114.2, 116.8, 118, 118.8, 119.1, 122.3, 125, 128.5, 131.9,
	138, 152.5, 153.9, 154.6, 155, 153.4, 155.3, 162.7, 166, 169,
	179.9, 181.9, 180.8, 181.3, 183.2, 181.2, 183.5, 187.8, 189.1, 190.3,
	188.1,
}

// GasReserves returns the world gas reserves series, 1980 through 2020.
func GasReserves() []ReservesPoint {
	points := make([]ReservesPoint, len(gasReserves))
	for i, v := range gasReserves {
		points[i] = ReservesPoint{Year: GasReservesFirstYear + i, Reserves: v}
	}
	return points
}

// GasProduction is natural gas production (bcm, 2023) per region.
var GasProduction = []RegionMetricRow{
	{Region: "North America", Value: 1261.1},
	{Region: "S. & Cent. America", Value: 162.0},
	{Region: "Europe", Value: 204.3},
	{Region: "CIS", Value: 773.6},
	{Region: "Middle East", Value: 712.7},
	{Region: "Africa", Value: 253.6},
	{Region: "Asia Pacific", Value: 691.8},
}
