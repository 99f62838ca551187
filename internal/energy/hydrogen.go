package energy

import "sort"

// WithTotals returns a copy of rows with Total set to Blue + Green.
func WithTotals(rows []HydrogenRow) []HydrogenRow {
	out := make([]HydrogenRow, len(rows))
	for i, row := range rows {
		row.Total = row.Blue + row.Green
		out[i] = row
	}
	return out
}

// SortByTotalDesc returns a copy of rows ordered by Total, largest first.
// Rows with equal totals keep their relative order.
func SortByTotalDesc(rows []HydrogenRow) []HydrogenRow {
	out := make([]HydrogenRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
