package energy

// RegionToISO maps each reporting region to the ISO-3166 alpha-3 codes drawn
// for it. Lists may overlap between regions (KAZ, RUS).
var RegionToISO = map[string][]string{
	"North America": {"USA", "CAN", "MEX"},
	"CIS":           {"RUS", "KAZ", "UZB", "TKM", "KGZ", "TJK"},
	"Middle East":   {"SAU", "IRN", "IRQ", "KWT", "ARE", "QAT", "OMN", "YEM", "SYR", "JOR", "LBN", "ISR"},
	"Africa": {
		"DZA", "AGO", "BEN", "BWA", "BFA", "BDI", "CPV", "CMR", "CAF", "TCD",
		"COM", "COG", "COD", "DJI", "EGY", "GNQ", "ERI", "SWZ", "ETH", "GAB",
		"GMB", "GHA", "GIN", "GNB", "CIV", "KEN", "LSO", "LBR", "LBY", "MDG",
		"MWI", "MLI", "MRT", "MUS", "MAR", "MOZ", "NAM", "NER", "NGA", "RWA",
		"STP", "SEN", "SYC", "SLE", "SOM", "ZAF", "SSD", "SDN", "TZA", "TGO",
		"TUN", "UGA", "ZMB", "ZWE",
	},
	"S. & Cent. America": {"ARG", "BOL", "BRA", "CHL", "COL", "ECU", "GUY", "PRY", "PER", "SUR", "URY", "VEN"},
	"Asia Pacific": {
		"AFG", "AUS", "BGD", "BTN", "BRN", "KHM", "CHN", "FJI", "IND", "IDN",
		"JPN", "KAZ", "KIR", "PRK", "KOR", "LAO", "MYS", "MDV", "MHL", "FSM",
		"MNG", "MMR", "NPL", "NZL", "PAK", "PLW", "PNG", "PHL", "WSM", "SGP",
		"SLB", "LKA", "THA", "TLS", "TON", "TUV", "VUT", "VNM",
	},
	"Europe": {
		"ALB", "AND", "ARM", "AUT", "AZE", "BLR", "BEL", "BIH", "BGR", "HRV",
		"CYP", "CZE", "DNK", "EST", "FIN", "FRA", "GEO", "DEU", "GRC", "HUN",
		"ISL", "IRL", "ITA", "KAZ", "XKX", "LVA", "LIE", "LTU", "LUX", "MLT",
		"MDA", "MCO", "MNE", "NLD", "MKD", "NOR", "POL", "PRT", "ROU", "RUS",
		"SMR", "SRB", "SVK", "SVN", "ESP", "SWE", "CHE", "TUR", "UKR", "GBR",
	},
}

// ExpandRegions broadcasts each row's value onto every country of its region.
// Output follows input row order, then the mapping's per-region order.
// Regions missing from mapping contribute no rows.
func ExpandRegions(rows []RegionMetricRow, mapping map[string][]string) []CountryMetricRow {
	var out []CountryMetricRow
	for _, row := range rows {
		for _, iso := range mapping[row.Region] {
			out = append(out, CountryMetricRow{ISOAlpha: iso, Value: row.Value})
		}
	}
	return out
}

// UnmappedRegions returns, in input order, the regions of rows that have no
// entry (or an empty entry) in mapping.
func UnmappedRegions(rows []RegionMetricRow, mapping map[string][]string) []string {
	var missing []string
	for _, row := range rows {
		if len(mapping[row.Region]) == 0 {
			missing = append(missing, row.Region)
		}
	}
	return missing
}
