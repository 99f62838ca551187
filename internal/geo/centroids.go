package geo

// centroids holds a representative point for every country drawn on the maps.
var centroids = map[string]Country{
	"AFG": {ISO: "AFG", Name: "Afghanistan", Lat: 33.93911, Lon: 67.709953},
	"AGO": {ISO: "AGO", Name: "Angola", Lat: -11.202692, Lon: 17.873887},
	"ALB": {ISO: "ALB", Name: "Albania", Lat: 41.153332, Lon: 20.168331},
	"AND": {ISO: "AND", Name: "Andorra", Lat: 42.546245, Lon: 1.601554},
	"ARE": {ISO: "ARE", Name: "United Arab Emirates", Lat: 23.424076, Lon: 53.847818},
	"ARG": {ISO: "ARG", Name: "Argentina", Lat: -38.416097, Lon: -63.616672},
	"ARM": {ISO: "ARM", Name: "Armenia", Lat: 40.069099, Lon: 45.038189},
	"AUS": {ISO: "AUS", Name: "Australia", Lat: -25.274398, Lon: 133.775136},
	"AUT": {ISO: "AUT", Name: "Austria", Lat: 47.516231, Lon: 14.550072},
	"AZE": {ISO: "AZE", Name: "Azerbaijan", Lat: 40.143105, Lon: 47.576927},
	"BDI": {ISO: "BDI", Name: "Burundi", Lat: -3.373056, Lon: 29.918886},
	"BEL": {ISO: "BEL", Name: "Belgium", Lat: 50.503887, Lon: 4.469936},
	"BEN": {ISO: "BEN", Name: "Benin", Lat: 9.30769, Lon: 2.315834},
	"BFA": {ISO: "BFA", Name: "Burkina Faso", Lat: 12.238333, Lon: -1.561593},
	"BGD": {ISO: "BGD", Name: "Bangladesh", Lat: 23.684994, Lon: 90.356331},
	"BGR": {ISO: "BGR", Name: "Bulgaria", Lat: 42.733883, Lon: 25.48583},
	"BIH": {ISO: "BIH", Name: "Bosnia and Herzegovina", Lat: 43.915886, Lon: 17.679076},
	"BLR": {ISO: "BLR", Name: "Belarus", Lat: 53.709807, Lon: 27.953389},
	"BOL": {ISO: "BOL", Name: "Bolivia", Lat: -16.290154, Lon: -63.588653},
	"BRA": {ISO: "BRA", Name: "Brazil", Lat: -14.235004, Lon: -51.92528},
	"BRN": {ISO: "BRN", Name: "Brunei", Lat: 4.535277, Lon: 114.727669},
	"BTN": {ISO: "BTN", Name: "Bhutan", Lat: 27.514162, Lon: 90.433601},
	"BWA": {ISO: "BWA", Name: "Botswana", Lat: -22.328474, Lon: 24.684866},
	"CAF": {ISO: "CAF", Name: "Central African Republic", Lat: 6.611111, Lon: 20.939444},
	"CAN": {ISO: "CAN", Name: "Canada", Lat: 56.130366, Lon: -106.346771},
	"CHE": {ISO: "CHE", Name: "Switzerland", Lat: 46.818188, Lon: 8.227512},
	"CHL": {ISO: "CHL", Name: "Chile", Lat: -35.675147, Lon: -71.542969},
	"CHN": {ISO: "CHN", Name: "China", Lat: 35.86166, Lon: 104.195397},
	"CIV": {ISO: "CIV", Name: "Côte d'Ivoire", Lat: 7.539989, Lon: -5.54708},
	"CMR": {ISO: "CMR", Name: "Cameroon", Lat: 7.369722, Lon: 12.354722},
	"COD": {ISO: "COD", Name: "Congo [DRC]", Lat: -4.038333, Lon: 21.758664},
	"COG": {ISO: "COG", Name: "Congo [Republic]", Lat: -0.228021, Lon: 15.827659},
	"COL": {ISO: "COL", Name: "Colombia", Lat: 4.570868, Lon: -74.297333},
	"COM": {ISO: "COM", Name: "Comoros", Lat: -11.875001, Lon: 43.872219},
	"CPV": {ISO: "CPV", Name: "Cape Verde", Lat: 16.002082, Lon: -24.013197},
	"CYP": {ISO: "CYP", Name: "Cyprus", Lat: 35.126413, Lon: 33.429859},
	"CZE": {ISO: "CZE", Name: "Czech Republic", Lat: 49.817492, Lon: 15.472962},
	"DEU": {ISO: "DEU", Name: "Germany", Lat: 51.165691, Lon: 10.451526},
	"DJI": {ISO: "DJI", Name: "Djibouti", Lat: 11.825138, Lon: 42.590275},
	"DNK": {ISO: "DNK", Name: "Denmark", Lat: 56.26392, Lon: 9.501785},
	"DZA": {ISO: "DZA", Name: "Algeria", Lat: 28.033886, Lon: 1.659626},
	"ECU": {ISO: "ECU", Name: "Ecuador", Lat: -1.831239, Lon: -78.183406},
	"EGY": {ISO: "EGY", Name: "Egypt", Lat: 26.820553, Lon: 30.802498},
	"ERI": {ISO: "ERI", Name: "Eritrea", Lat: 15.179384, Lon: 39.782334},
	"ESP": {ISO: "ESP", Name: "Spain", Lat: 40.463667, Lon: -3.74922},
	"EST": {ISO: "EST", Name: "Estonia", Lat: 58.595272, Lon: 25.013607},
	"ETH": {ISO: "ETH", Name: "Ethiopia", Lat: 9.145, Lon: 40.489673},
	"FIN": {ISO: "FIN", Name: "Finland", Lat: 61.92411, Lon: 25.748151},
	"FJI": {ISO: "FJI", Name: "Fiji", Lat: -16.578193, Lon: 179.414413},
	"FRA": {ISO: "FRA", Name: "France", Lat: 46.227638, Lon: 2.213749},
	"FSM": {ISO: "FSM", Name: "Micronesia", Lat: 7.425554, Lon: 150.550812},
	"GAB": {ISO: "GAB", Name: "Gabon", Lat: -0.803689, Lon: 11.609444},
	"GBR": {ISO: "GBR", Name: "United Kingdom", Lat: 55.378051, Lon: -3.435973},
	"GEO": {ISO: "GEO", Name: "Georgia", Lat: 42.315407, Lon: 43.356892},
	"GHA": {ISO: "GHA", Name: "Ghana", Lat: 7.946527, Lon: -1.023194},
	"GIN": {ISO: "GIN", Name: "Guinea", Lat: 9.945587, Lon: -9.696645},
	"GMB": {ISO: "GMB", Name: "Gambia", Lat: 13.443182, Lon: -15.310139},
	"GNB": {ISO: "GNB", Name: "Guinea-Bissau", Lat: 11.803749, Lon: -15.180413},
	"GNQ": {ISO: "GNQ", Name: "Equatorial Guinea", Lat: 1.650801, Lon: 10.267895},
	"GRC": {ISO: "GRC", Name: "Greece", Lat: 39.074208, Lon: 21.824312},
	"GUY": {ISO: "GUY", Name: "Guyana", Lat: 4.860416, Lon: -58.93018},
	"HRV": {ISO: "HRV", Name: "Croatia", Lat: 45.1, Lon: 15.2},
	"HUN": {ISO: "HUN", Name: "Hungary", Lat: 47.162494, Lon: 19.503304},
	"IDN": {ISO: "IDN", Name: "Indonesia", Lat: -0.789275, Lon: 113.921327},
	"IND": {ISO: "IND", Name: "India", Lat: 20.593684, Lon: 78.96288},
	"IRL": {ISO: "IRL", Name: "Ireland", Lat: 53.41291, Lon: -8.24389},
	"IRN": {ISO: "IRN", Name: "Iran", Lat: 32.427908, Lon: 53.688046},
	"IRQ": {ISO: "IRQ", Name: "Iraq", Lat: 33.223191, Lon: 43.679291},
	"ISL": {ISO: "ISL", Name: "Iceland", Lat: 64.963051, Lon: -19.020835},
	"ISR": {ISO: "ISR", Name: "Israel", Lat: 31.046051, Lon: 34.851612},
	"ITA": {ISO: "ITA", Name: "Italy", Lat: 41.87194, Lon: 12.56738},
	"JOR": {ISO: "JOR", Name: "Jordan", Lat: 30.585164, Lon: 36.238414},
	"JPN": {ISO: "JPN", Name: "Japan", Lat: 36.204824, Lon: 138.252924},
	"KAZ": {ISO: "KAZ", Name: "Kazakhstan", Lat: 48.019573, Lon: 66.923684},
	"KEN": {ISO: "KEN", Name: "Kenya", Lat: -0.023559, Lon: 37.906193},
	"KGZ": {ISO: "KGZ", Name: "Kyrgyzstan", Lat: 41.20438, Lon: 74.766098},
	"KHM": {ISO: "KHM", Name: "Cambodia", Lat: 12.565679, Lon: 104.990963},
	"KIR": {ISO: "KIR", Name: "Kiribati", Lat: -3.370417, Lon: -168.734039},
	"KOR": {ISO: "KOR", Name: "South Korea", Lat: 35.907757, Lon: 127.766922},
	"KWT": {ISO: "KWT", Name: "Kuwait", Lat: 29.31166, Lon: 47.481766},
	"LAO": {ISO: "LAO", Name: "Laos", Lat: 19.85627, Lon: 102.495496},
	"LBN": {ISO: "LBN", Name: "Lebanon", Lat: 33.854721, Lon: 35.862285},
	"LBR": {ISO: "LBR", Name: "Liberia", Lat: 6.428055, Lon: -9.429499},
	"LBY": {ISO: "LBY", Name: "Libya", Lat: 26.3351, Lon: 17.228331},
	"LIE": {ISO: "LIE", Name: "Liechtenstein", Lat: 47.166, Lon: 9.555373},
	"LKA": {ISO: "LKA", Name: "Sri Lanka", Lat: 7.873054, Lon: 80.771797},
	"LSO": {ISO: "LSO", Name: "Lesotho", Lat: -29.609988, Lon: 28.233608},
	"LTU": {ISO: "LTU", Name: "Lithuania", Lat: 55.169438, Lon: 23.881275},
	"LUX": {ISO: "LUX", Name: "Luxembourg", Lat: 49.815273, Lon: 6.129583},
	"LVA": {ISO: "LVA", Name: "Latvia", Lat: 56.879635, Lon: 24.603189},
	"MAR": {ISO: "MAR", Name: "Morocco", Lat: 31.791702, Lon: -7.09262},
	"MCO": {ISO: "MCO", Name: "Monaco", Lat: 43.750298, Lon: 7.412841},
	"MDA": {ISO: "MDA", Name: "Moldova", Lat: 47.411631, Lon: 28.369885},
	"MDG": {ISO: "MDG", Name: "Madagascar", Lat: -18.766947, Lon: 46.869107},
	"MDV": {ISO: "MDV", Name: "Maldives", Lat: 3.202778, Lon: 73.22068},
	"MEX": {ISO: "MEX", Name: "Mexico", Lat: 23.634501, Lon: -102.552784},
	"MHL": {ISO: "MHL", Name: "Marshall Islands", Lat: 7.131474, Lon: 171.184478},
	"MKD": {ISO: "MKD", Name: "Macedonia [FYROM]", Lat: 41.608635, Lon: 21.745275},
	"MLI": {ISO: "MLI", Name: "Mali", Lat: 17.570692, Lon: -3.996166},
	"MLT": {ISO: "MLT", Name: "Malta", Lat: 35.937496, Lon: 14.375416},
	"MMR": {ISO: "MMR", Name: "Myanmar [Burma]", Lat: 21.913965, Lon: 95.956223},
	"MNE": {ISO: "MNE", Name: "Montenegro", Lat: 42.708678, Lon: 19.37439},
	"MNG": {ISO: "MNG", Name: "Mongolia", Lat: 46.862496, Lon: 103.846656},
	"MOZ": {ISO: "MOZ", Name: "Mozambique", Lat: -18.665695, Lon: 35.529562},
	"MRT": {ISO: "MRT", Name: "Mauritania", Lat: 21.00789, Lon: -10.940835},
	"MUS": {ISO: "MUS", Name: "Mauritius", Lat: -20.348404, Lon: 57.552152},
	"MWI": {ISO: "MWI", Name: "Malawi", Lat: -13.254308, Lon: 34.301525},
	"MYS": {ISO: "MYS", Name: "Malaysia", Lat: 4.210484, Lon: 101.975766},
	"NAM": {ISO: "NAM", Name: "Namibia", Lat: -22.95764, Lon: 18.49041},
	"NER": {ISO: "NER", Name: "Niger", Lat: 17.607789, Lon: 8.081666},
	"NGA": {ISO: "NGA", Name: "Nigeria", Lat: 9.081999, Lon: 8.675277},
	"NLD": {ISO: "NLD", Name: "Netherlands", Lat: 52.132633, Lon: 5.291266},
	"NOR": {ISO: "NOR", Name: "Norway", Lat: 60.472024, Lon: 8.468946},
	"NPL": {ISO: "NPL", Name: "Nepal", Lat: 28.394857, Lon: 84.124008},
	"NZL": {ISO: "NZL", Name: "New Zealand", Lat: -40.900557, Lon: 174.885971},
	"OMN": {ISO: "OMN", Name: "Oman", Lat: 21.512583, Lon: 55.923255},
	"PAK": {ISO: "PAK", Name: "Pakistan", Lat: 30.375321, Lon: 69.345116},
	"PER": {ISO: "PER", Name: "Peru", Lat: -9.189967, Lon: -75.015152},
	"PHL": {ISO: "PHL", Name: "Philippines", Lat: 12.879721, Lon: 121.774017},
	"PLW": {ISO: "PLW", Name: "Palau", Lat: 7.51498, Lon: 134.58252},
	"PNG": {ISO: "PNG", Name: "Papua New Guinea", Lat: -6.314993, Lon: 143.95555},
	"POL": {ISO: "POL", Name: "Poland", Lat: 51.919438, Lon: 19.145136},
	"PRK": {ISO: "PRK", Name: "North Korea", Lat: 40.339852, Lon: 127.510093},
	"PRT": {ISO: "PRT", Name: "Portugal", Lat: 39.399872, Lon: -8.224454},
	"PRY": {ISO: "PRY", Name: "Paraguay", Lat: -23.442503, Lon: -58.443832},
	"QAT": {ISO: "QAT", Name: "Qatar", Lat: 25.354826, Lon: 51.183884},
	"ROU": {ISO: "ROU", Name: "Romania", Lat: 45.943161, Lon: 24.96676},
	"RUS": {ISO: "RUS", Name: "Russia", Lat: 61.52401, Lon: 105.318756},
	"RWA": {ISO: "RWA", Name: "Rwanda", Lat: -1.940278, Lon: 29.873888},
	"SAU": {ISO: "SAU", Name: "Saudi Arabia", Lat: 23.885942, Lon: 45.079162},
	"SDN": {ISO: "SDN", Name: "Sudan", Lat: 12.862807, Lon: 30.217636},
	"SEN": {ISO: "SEN", Name: "Senegal", Lat: 14.497401, Lon: -14.452362},
	"SGP": {ISO: "SGP", Name: "Singapore", Lat: 1.352083, Lon: 103.819836},
	"SLB": {ISO: "SLB", Name: "Solomon Islands", Lat: -9.64571, Lon: 160.156194},
	"SLE": {ISO: "SLE", Name: "Sierra Leone", Lat: 8.460555, Lon: -11.779889},
	"SMR": {ISO: "SMR", Name: "San Marino", Lat: 43.94236, Lon: 12.457777},
	"SOM": {ISO: "SOM", Name: "Somalia", Lat: 5.152149, Lon: 46.199616},
	"SRB": {ISO: "SRB", Name: "Serbia", Lat: 44.016521, Lon: 21.005859},
	"SSD": {ISO: "SSD", Name: "South Sudan", Lat: 7.862685, Lon: 29.694923},
	"STP": {ISO: "STP", Name: "São Tomé and Príncipe", Lat: 0.18636, Lon: 6.613081},
	"SUR": {ISO: "SUR", Name: "Suriname", Lat: 3.919305, Lon: -56.027783},
	"SVK": {ISO: "SVK", Name: "Slovakia", Lat: 48.669026, Lon: 19.699024},
	"SVN": {ISO: "SVN", Name: "Slovenia", Lat: 46.151241, Lon: 14.995463},
	"SWE": {ISO: "SWE", Name: "Sweden", Lat: 60.128161, Lon: 18.643501},
	"SWZ": {ISO: "SWZ", Name: "Swaziland", Lat: -26.522503, Lon: 31.465866},
	"SYC": {ISO: "SYC", Name: "Seychelles", Lat: -4.679574, Lon: 55.491977},
	"SYR": {ISO: "SYR", Name: "Syria", Lat: 34.802075, Lon: 38.996815},
	"TCD": {ISO: "TCD", Name: "Chad", Lat: 15.454166, Lon: 18.732207},
	"TGO": {ISO: "TGO", Name: "Togo", Lat: 8.619543, Lon: 0.824782},
	"THA": {ISO: "THA", Name: "Thailand", Lat: 15.870032, Lon: 100.992541},
	"TJK": {ISO: "TJK", Name: "Tajikistan", Lat: 38.861034, Lon: 71.276093},
	"TKM": {ISO: "TKM", Name: "Turkmenistan", Lat: 38.969719, Lon: 59.556278},
	"TLS": {ISO: "TLS", Name: "Timor-Leste", Lat: -8.874217, Lon: 125.727539},
	"TON": {ISO: "TON", Name: "Tonga", Lat: -21.178986, Lon: -175.198242},
	"TUN": {ISO: "TUN", Name: "Tunisia", Lat: 33.886917, Lon: 9.537499},
	"TUR": {ISO: "TUR", Name: "Turkey", Lat: 38.963745, Lon: 35.243322},
	"TUV": {ISO: "TUV", Name: "Tuvalu", Lat: -7.109535, Lon: 177.64933},
	"TZA": {ISO: "TZA", Name: "Tanzania", Lat: -6.369028, Lon: 34.888822},
	"UGA": {ISO: "UGA", Name: "Uganda", Lat: 1.373333, Lon: 32.290275},
	"UKR": {ISO: "UKR", Name: "Ukraine", Lat: 48.379433, Lon: 31.16558},
	"URY": {ISO: "URY", Name: "Uruguay", Lat: -32.522779, Lon: -55.765835},
	"USA": {ISO: "USA", Name: "United States", Lat: 37.09024, Lon: -95.712891},
	"UZB": {ISO: "UZB", Name: "Uzbekistan", Lat: 41.377491, Lon: 64.585262},
	"VEN": {ISO: "VEN", Name: "Venezuela", Lat: 6.42375, Lon: -66.58973},
	"VNM": {ISO: "VNM", Name: "Vietnam", Lat: 14.058324, Lon: 108.277199},
	"VUT": {ISO: "VUT", Name: "Vanuatu", Lat: -15.376706, Lon: 166.959158},
	"WSM": {ISO: "WSM", Name: "Samoa", Lat: -13.759029, Lon: -172.104629},
	"XKX": {ISO: "XKX", Name: "Kosovo", Lat: 42.602636, Lon: 20.902977},
	"YEM": {ISO: "YEM", Name: "Yemen", Lat: 15.552727, Lon: 48.516388},
	"ZAF": {ISO: "ZAF", Name: "South Africa", Lat: -30.559482, Lon: 22.937506},
	"ZMB": {ISO: "ZMB", Name: "Zambia", Lat: -13.133897, Lon: 27.849332},
	"ZWE": {ISO: "ZWE", Name: "Zimbabwe", Lat: -19.015438, Lon: 29.154857},
}
