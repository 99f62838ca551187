package energy

import (
	"log/slog"

	"energydash/internal/logging"
)

// Build assembles the dashboard tables from the static source data.
func Build() *Dataset {
	ds := &Dataset{
		RPMap:         expandLogged("rp_ratio", RPRatio),
		Hydrogen:      SortByTotalDesc(WithTotals(HydrogenProduction)),
		GasReserves:   GasReserves(),
		ProductionMap: expandLogged("gas_production", GasProduction),
	}

	logging.Info("Dataset built",
		slog.Int("rp_rows", len(ds.RPMap)),
		slog.Int("hydrogen_rows", len(ds.Hydrogen)),
		slog.Int("reserves_points", len(ds.GasReserves)),
		slog.Int("production_rows", len(ds.ProductionMap)))
	return ds
}

func expandLogged(table string, rows []RegionMetricRow) []CountryMetricRow {
	for _, region := range UnmappedRegions(rows, RegionToISO) {
		logging.Debug("Region has no country mapping",
			slog.String("table", table),
			slog.String("region", region))
	}
	return ExpandRegions(rows, RegionToISO)
}
