package section

import (
	"sort"
	"strings"
)

// Rolled W-shape property table, metric units (cm, cm², cm³, cm⁴, cm⁶).
// Transcribed from the AISC shapes database for the sizes most commonly
// stocked; properties are gross-section values.

func w(name string, d, bf, tf, tw, a, ix, sx, zx, rx, iy, sy, zy, ry, j, cw, ho float64) Properties {
	return Properties{
		Name: name,
		D:    d, Bf: bf, Tf: tf, Tw: tw,
		A:  a,
		Ix: ix, Sx: sx, Zx: zx, Rx: rx,
		Iy: iy, Sy: sy, Zy: zy, Ry: ry,
		J: j, Cw: cw, Ho: ho,
		Symmetry: DoublySymmetric,
		Category: WideFlange,
	}
}

var catalog = map[string]Properties{
	"W36X160": w("W36X160", 88.90, 30.48, 1.73, 1.02, 306.45, 149762.81, 3369.02, 3722.60, 22.10, 12569.87, 825.16, 1264.52, 6.40, 48.26, 998533.44, 87.17),
	"W33X130": w("W33X130", 82.30, 28.96, 1.57, 0.89, 249.03, 120929.76, 2941.76, 3243.87, 22.05, 9912.26, 685.16, 1049.68, 6.30, 38.71, 887709.12, 80.73),
	"W30X116": w("W30X116", 75.18, 26.67, 1.42, 0.84, 222.58, 91659.42, 2439.35, 2689.03, 20.27, 7206.45, 540.65, 826.45, 5.69, 30.97, 633564.48, 73.76),
	"W30X99":  w("W30X99", 74.17, 26.67, 1.17, 0.64, 189.68, 76547.10, 2064.52, 2267.74, 20.12, 5896.77, 442.58, 676.13, 5.59, 16.77, 482293.76, 73.00),
	"W27X94":  w("W27X94", 66.80, 25.40, 1.27, 0.74, 180.65, 69435.48, 2079.35, 2283.87, 19.61, 5515.48, 434.84, 664.52, 5.51, 22.58, 480386.88, 65.53),
	"W24X84":  w("W24X84", 60.45, 22.86, 1.14, 0.66, 160.65, 55803.87, 1847.74, 2032.26, 18.62, 4383.87, 383.87, 589.03, 5.21, 16.77, 361612.80, 60.31),
	"W24X76":  w("W24X76", 59.94, 22.86, 1.02, 0.58, 145.16, 49871.61, 1664.52, 1828.39, 18.54, 3893.55, 340.65, 522.58, 5.18, 11.61, 311225.28, 60.92),
	"W24X68":  w("W24X68", 59.69, 22.61, 0.89, 0.53, 130.32, 44122.58, 1479.35, 1621.94, 18.39, 3403.23, 301.29, 461.29, 5.11, 8.39, 264709.12, 60.80),
	"W24X55":  w("W24X55", 58.93, 17.78, 0.89, 0.51, 105.81, 36393.55, 1235.48, 1352.26, 18.57, 1567.74, 176.77, 273.55, 3.84, 7.10, 105225.28, 58.04),
	"W21X68":  w("W21X68", 51.31, 20.83, 0.86, 0.53, 130.32, 32612.26, 1272.26, 1398.71, 15.80, 2601.29, 249.68, 382.58, 4.47, 6.77, 168193.92, 50.45),
	"W21X62":  w("W21X62", 52.07, 20.83, 0.79, 0.51, 118.71, 30000.00, 1153.55, 1271.61, 15.90, 2393.55, 229.68, 351.61, 4.49, 5.16, 153870.72, 51.28),
	"W21X50":  w("W21X50", 51.31, 16.51, 0.79, 0.46, 96.13, 24387.10, 951.61, 1046.45, 15.93, 1169.03, 141.94, 220.65, 3.48, 4.19, 72580.80, 50.52),
	"W21X44":  w("W21X44", 52.32, 16.51, 0.71, 0.43, 84.52, 22193.55, 848.39, 932.26, 16.21, 1085.81, 131.61, 204.52, 3.58, 3.23, 66774.72, 51.61),
	"W18X76":  w("W18X76", 45.21, 27.94, 0.74, 0.53, 145.81, 30312.90, 1341.29, 1491.61, 14.40, 5101.29, 365.16, 556.13, 5.92, 6.45, 355806.08, 45.47),
	"W18X60":  w("W18X60", 45.72, 19.05, 0.84, 0.51, 114.84, 24554.84, 1075.48, 1194.84, 14.63, 1977.42, 207.74, 320.65, 4.14, 5.16, 123870.72, 44.88),
	"W18X50":  w("W18X50", 45.72, 19.05, 0.69, 0.41, 95.48, 20100.00, 880.65, 976.13, 14.50, 1645.16, 172.90, 266.45, 4.14, 2.90, 100645.44, 45.03),
	"W18X40":  w("W18X40", 45.47, 15.24, 0.69, 0.41, 76.77, 16783.87, 739.35, 818.71, 14.78, 835.48, 109.68, 171.61, 3.30, 2.26, 42580.80, 45.78),
	"W18X35":  w("W18X35", 44.96, 15.24, 0.61, 0.36, 67.10, 14472.26, 644.52, 710.97, 14.68, 719.35, 94.52, 147.74, 3.28, 1.61, 35483.84, 45.35),
	"W16X57":  w("W16X57", 40.89, 18.03, 0.89, 0.53, 109.03, 23996.77, 1174.19, 1307.74, 14.83, 1811.61, 201.29, 312.90, 4.09, 7.10, 105225.28, 40.00),
	"W16X45":  w("W16X45", 40.39, 17.78, 0.71, 0.43, 86.45, 18790.32, 931.61, 1035.48, 14.76, 1396.77, 157.42, 244.52, 4.01, 3.55, 78064.64, 39.68),
	"W16X36":  w("W16X36", 40.39, 17.78, 0.58, 0.36, 69.03, 15251.61, 756.77, 838.71, 14.86, 1149.03, 129.68, 201.29, 4.09, 2.10, 63548.48, 39.81),
	"W16X26":  w("W16X26", 39.37, 13.97, 0.51, 0.30, 49.68, 10883.87, 553.55, 607.74, 14.81, 518.71, 74.19, 116.13, 3.23, 1.13, 24709.12, 38.86),
	"W14X90":  w("W14X90", 28.19, 38.35, 0.79, 0.51, 172.90, 24866.45, 1764.52, 1974.19, 12.00, 6816.13, 355.48, 550.00, 6.27, 8.71, 235483.84, 27.40),
	"W14X82":  w("W14X82", 27.94, 25.40, 0.89, 0.51, 157.42, 22700.00, 1625.81, 1816.13, 12.01, 3150.00, 248.39, 385.81, 4.47, 9.68, 119354.56, 27.05),
	"W14X68":  w("W14X68", 27.69, 25.40, 0.74, 0.41, 130.32, 18533.87, 1341.29, 1496.13, 11.91, 2566.45, 202.58, 314.19, 4.42, 5.16, 93548.48, 26.95),
	"W14X61":  w("W14X61", 27.43, 25.15, 0.66, 0.38, 117.42, 16450.00, 1200.00, 1335.48, 11.84, 2266.45, 180.65, 280.65, 4.39, 3.55, 80000.00, 26.77),
	"W14X53":  w("W14X53", 33.02, 20.32, 0.66, 0.36, 101.29, 14533.87, 880.65, 983.87, 11.99, 1066.45, 105.16, 164.52, 3.25, 3.55, 32580.80, 32.36),
	"W14X48":  w("W14X48", 32.77, 20.32, 0.61, 0.33, 91.61, 13150.00, 803.23, 896.77, 11.96, 966.45, 95.48, 149.68, 3.25, 2.58, 28387.20, 32.16),
	"W14X43":  w("W14X43", 32.26, 20.32, 0.53, 0.30, 82.58, 11566.45, 718.06, 800.00, 11.84, 850.00, 83.87, 131.61, 3.20, 2.10, 24129.28, 31.73),
	"W14X38":  w("W14X38", 37.85, 17.02, 0.51, 0.30, 72.90, 10650.00, 563.23, 628.39, 12.09, 434.84, 51.13, 80.65, 2.44, 1.61, 9677.52, 37.34),
	"W14X30":  w("W14X30", 35.05, 16.51, 0.41, 0.25, 57.42, 8150.00, 465.16, 516.77, 11.91, 333.87, 40.65, 63.87, 2.41, 0.97, 7096.32, 34.64),
	"W12X87":  w("W12X87", 28.19, 27.43, 0.76, 0.51, 167.10, 21200.00, 1503.23, 1696.77, 11.25, 5033.87, 367.10, 564.52, 5.49, 7.74, 219354.56, 27.43),
	"W12X72":  w("W12X72", 27.69, 26.67, 0.64, 0.43, 138.06, 17533.87, 1267.74, 1425.81, 11.25, 4150.00, 311.61, 479.35, 5.49, 4.52, 175483.84, 27.05),
	"W12X58":  w("W12X58", 27.18, 25.40, 0.53, 0.36, 111.61, 14033.87, 1032.26, 1161.29, 11.20, 3350.00, 264.52, 406.45, 5.48, 2.58, 139354.56, 26.65),
	"W12X50":  w("W12X50", 30.23, 20.32, 0.64, 0.38, 95.48, 12200.00, 807.74, 906.45, 11.30, 1500.00, 147.74, 230.97, 3.96, 3.23, 57096.32, 29.59),
	"W12X40":  w("W12X40", 29.72, 20.32, 0.51, 0.30, 76.77, 9700.00, 653.55, 732.90, 11.23, 1200.00, 118.71, 185.81, 3.96, 1.61, 42580.80, 29.21),
	"W12X35":  w("W12X35", 30.48, 16.51, 0.53, 0.30, 67.10, 8866.45, 581.94, 653.55, 11.51, 633.87, 76.77, 120.65, 3.07, 1.61, 19354.56, 29.95),
	"W12X26":  w("W12X26", 29.97, 16.51, 0.38, 0.23, 49.68, 6533.87, 436.77, 489.03, 11.46, 458.06, 55.48, 87.10, 3.04, 0.81, 12580.80, 29.59),
	"W10X60":  w("W10X60", 26.42, 25.15, 0.66, 0.41, 115.48, 13733.87, 1041.94, 1177.42, 10.90, 3033.87, 241.94, 374.19, 5.13, 5.16, 127096.32, 25.76),
	"W10X49":  w("W10X49", 25.91, 25.15, 0.56, 0.34, 94.19, 11200.00, 864.52, 976.77, 10.90, 2500.00, 198.71, 308.39, 5.15, 3.23, 102580.80, 25.35),
	"W10X39":  w("W10X39", 25.40, 20.07, 0.53, 0.32, 75.48, 8866.45, 699.35, 787.10, 10.85, 1116.13, 111.61, 174.19, 3.84, 2.42, 41612.80, 24.87),
	"W10X33":  w("W10X33", 24.89, 20.07, 0.43, 0.29, 63.23, 7400.00, 595.48, 670.32, 10.82, 933.87, 93.23, 145.81, 3.84, 1.61, 33548.48, 24.46),
	"W10X26":  w("W10X26", 25.40, 14.02, 0.44, 0.25, 49.68, 5933.87, 467.74, 528.39, 10.95, 333.87, 47.74, 74.84, 2.59, 1.13, 8064.64, 24.96),
	"W8X48":   w("W8X48", 21.84, 20.57, 0.68, 0.40, 92.26, 6833.87, 626.45, 719.35, 8.61, 1500.00, 145.81, 229.03, 4.04, 5.48, 52258.08, 21.16),
	"W8X40":   w("W8X40", 21.59, 20.32, 0.56, 0.36, 76.77, 5600.00, 519.35, 596.77, 8.53, 1233.87, 121.61, 191.61, 4.01, 3.23, 41612.80, 21.03),
	"W8X31":   w("W8X31", 20.32, 20.32, 0.43, 0.29, 59.35, 4333.87, 427.10, 489.68, 8.56, 966.45, 95.16, 149.68, 4.04, 1.61, 31612.80, 19.89),
	"W8X24":   w("W8X24", 20.32, 16.51, 0.43, 0.25, 46.13, 3466.45, 341.94, 391.61, 8.64, 400.00, 48.39, 75.81, 2.95, 1.13, 9677.52, 19.89),
	"W8X18":   w("W8X18", 20.83, 13.34, 0.33, 0.23, 34.84, 2633.87, 253.55, 290.32, 8.69, 183.87, 27.58, 43.55, 2.29, 0.65, 3064.64, 20.50),
	"W6X25":   w("W6X25", 16.00, 15.01, 0.46, 0.32, 47.74, 1316.13, 164.52, 193.55, 5.26, 283.87, 37.90, 59.35, 2.44, 1.29, 5806.08, 15.54),
	"W6X15":   w("W6X15", 14.99, 15.01, 0.28, 0.23, 28.71, 766.45, 102.26, 119.35, 5.16, 166.45, 22.19, 34.52, 2.41, 0.48, 2903.04, 14.71),
}

// Lookup finds a catalog shape by designation. Matching is
// case-insensitive and tolerates "x" or "X" as the separator.
func Lookup(name string) (Properties, bool) {
	p, ok := catalog[strings.ToUpper(strings.TrimSpace(name))]
	return p, ok
}

// Names returns the catalog designations in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
