package aisc

// LoadCombination represents an LRFD strength load combination
// Based on ASCE/SEI 7 Section 2.3 - Combining Factored Loads Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ASCE/SEI 7 Section 2.3.1 - Basic Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only member checks
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadEffects holds unfactored values of one response quantity (an axial
// force or a moment) from each load type.
type LoadEffects struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Factor applies the combination's load factors to a set of effects.
func (lc LoadCombination) Factor(e LoadEffects) float64 {
	return lc.Dead*e.Dead +
		lc.Live*e.Live +
		lc.Roof*e.Roof +
		lc.Wind*e.Wind +
		lc.Earthquake*e.Earthquake +
		lc.Rain*e.Rain
}

// GoverningEffect finds the maximum-magnitude factored effect across the
// given combinations.
func GoverningEffect(e LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		u := combo.Factor(e)
		if abs(u) > abs(governing) {
			governing = u
			governingCombo = combo
		}
	}

	return governing, governingCombo
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
