package energy

// RegionMetricRow is one region's value for a single metric.
type RegionMetricRow struct {
	Region string
	Value  float64
}

// CountryMetricRow is a region value broadcast onto one country.
type CountryMetricRow struct {
	ISOAlpha string
	Value    float64
}

// HydrogenRow holds hydrogen production (TWh) by colour for one region.
type HydrogenRow struct {
	Region string
	Blue   float64
	Green  float64
	Total  float64
}

// ReservesPoint is the total proven world gas reserves for one year, in
// trillion cubic metres.
type ReservesPoint struct {
	Year     int
	Reserves float64
}

// Dataset holds the four finished tables the dashboard charts are built from.
type Dataset struct {
	RPMap         []CountryMetricRow
	Hydrogen      []HydrogenRow
	GasReserves   []ReservesPoint
	ProductionMap []CountryMetricRow
}
