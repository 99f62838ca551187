package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"energydash/internal/energy"
)

// WriteSummary writes a markdown report of the dashboard tables.
func WriteSummary(w io.Writer, ds *energy.Dataset, now time.Time) error {
	var b strings.Builder

	b.WriteString("# ENERGY DATA SUMMARY\n")
	b.WriteString("## Gas reserves, production and hydrogen by region\n\n")

	b.WriteString("### Executive summary\n\n")
	fmt.Fprintf(&b, "- **Countries on R/P map**: %d\n", countDistinct(ds.RPMap))
	fmt.Fprintf(&b, "- **Countries on production map**: %d\n", countDistinct(ds.ProductionMap))
	if n := len(ds.GasReserves); n >= 2 {
		first, last := ds.GasReserves[0], ds.GasReserves[n-1]
		growth := (last.Reserves - first.Reserves) / first.Reserves * 100
		fmt.Fprintf(&b, "- **World gas reserves %d**: %.1f tcm\n", first.Year, first.Reserves)
		fmt.Fprintf(&b, "- **World gas reserves %d**: %.1f tcm\n", last.Year, last.Reserves)
		fmt.Fprintf(&b, "- **Reserves growth %d-%d**: %.1f%%\n", first.Year, last.Year, growth)
	}

	writeRegionTable(&b, "R/P ratio by region", "R/P (years)", energy.RPRatio)
	writeRegionTable(&b, "Natural gas production by region (2023)", "Production (bcm)", energy.GasProduction)

	b.WriteString("\n### Hydrogen production by region\n\n")
	b.WriteString("| Rank | Region | Blue (TWh) | Green (TWh) | Total (TWh) |\n")
	b.WriteString("|------|--------|------------|-------------|-------------|\n")
	for i, r := range ds.Hydrogen {
		fmt.Fprintf(&b, "| %d | %s | %.1f | %.1f | %.1f |\n", i+1, r.Region, r.Blue, r.Green, r.Total)
	}

	fmt.Fprintf(&b, "\n---\n*Generated by energydash - %s*\n", now.Format("2 January 2006"))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRegionTable(b *strings.Builder, title, metric string, rows []energy.RegionMetricRow) {
	ranked := make([]energy.RegionMetricRow, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	fmt.Fprintf(b, "\n### %s\n\n", title)
	fmt.Fprintf(b, "| Rank | Region | %s | Countries |\n", metric)
	b.WriteString("|------|--------|------|-----------|\n")
	for i, r := range ranked {
		fmt.Fprintf(b, "| %d | %s | %.1f | %d |\n", i+1, r.Region, r.Value, len(energy.RegionToISO[r.Region]))
	}
}

func countDistinct(rows []energy.CountryMetricRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.ISOAlpha] = struct{}{}
	}
	return len(seen)
}
