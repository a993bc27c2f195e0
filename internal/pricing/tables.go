package pricing

import "strings"

/********** factor registries (single source of truth) **********/

// defaultBase applies to any country absent from countryBase.
const defaultBase = 250.0

// countryBase is the hard-coded country -> base price table, in base
// currency units, keyed lowercase.
var countryBase = map[string]float64{
	"japan":          300,
	"thailand":       150,
	"vietnam":        130,
	"indonesia":      140,
	"india":          120,
	"france":         350,
	"italy":          330,
	"spain":          300,
	"greece":         310,
	"portugal":       280,
	"united kingdom": 360,
	"iceland":        400,
	"switzerland":    420,
	"united states":  380,
	"canada":         340,
	"mexico":         180,
	"peru":           190,
	"brazil":         200,
	"argentina":      210,
	"australia":      280,
	"new zealand":    290,
	"egypt":          170,
	"morocco":        160,
	"south africa":   220,
	"turkey":         180,
}

// continentFactor weights by continent; unknown -> 1.0.
var continentFactor = map[string]float64{
	"asia":          0.8,
	"europe":        1.2,
	"north america": 1.3,
	"south america": 0.9,
	"oceania":       1.1,
	"africa":        0.85,
	"antarctica":    2.0,
}

// categoryFactor weights by category; items carrying several matched
// categories combine them with a geometric mean so one premium tag cannot
// dominate a multi-category item.
var categoryFactor = map[string]float64{
	"food & drink": 1.2,
	"adventure":    1.3,
	"culture":      1.0,
	"history":      1.05,
	"nature":       1.1,
	"wildlife":     1.15,
	"cruise":       1.25,
	"wellness":     1.35,
	"walking":      0.85,
	"family":       0.9,
	"nightlife":    1.1,
}

// privatePremium multiplies the synthesized price for private tours.
const privatePremium = 1.4

func baseFor(country string) float64 {
	if v, ok := countryBase[strings.ToLower(strings.TrimSpace(country))]; ok {
		return v
	}
	return defaultBase
}

func continentFor(continent string) float64 {
	if v, ok := continentFactor[strings.ToLower(strings.TrimSpace(continent))]; ok {
		return v
	}
	return 1.0
}

// durationFor buckets the tour length in hours.
func durationFor(hours float64) float64 {
	switch {
	case hours <= 4:
		return 0.8
	case hours <= 8:
		return 1.0
	case hours <= 12:
		return 1.5
	default:
		return 1.8
	}
}

// ratingFor buckets the average review score; a missing rating (zero) is
// neutral.
func ratingFor(rating float64) float64 {
	switch {
	case rating == 0:
		return 1.0
	case rating >= 4.5:
		return 1.2
	case rating >= 4.0:
		return 1.0
	case rating >= 3.5:
		return 0.9
	default:
		return 0.8
	}
}
