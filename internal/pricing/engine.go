// Package pricing synthesizes a three-tier price per catalog item from
// weighted static factors. Quote is total: every lookup has a neutral
// default, so it never fails and never produces a negative or fractional
// amount.
package pricing

import (
	"math"
	"strings"

	"travel_catalog/internal/domain"
)

// Input is the subset of a raw record the engine prices on.
type Input struct {
	Country       string
	Continent     string
	Categories    []string
	DurationHours float64
	Rating        float64
	Private       bool
}

// Quote derives the adult/child/infant prices. Factor order matters:
// country base, continent, categories (geometric mean), duration bucket,
// rating bucket, then the private premium; the result rounds to the
// nearest 10 and the child/infant tiers derive from the rounded adult
// price at 0.7 and 0.1.
func Quote(in Input) domain.PriceSet {
	v := baseFor(in.Country)
	v *= continentFor(in.Continent)
	v *= categoriesFor(in.Categories)
	v *= durationFor(in.DurationHours)
	v *= ratingFor(in.Rating)
	if in.Private {
		v *= privatePremium
	}

	adult := roundTo10(v)
	return domain.PriceSet{
		Adult:  adult,
		Child:  roundTo10(float64(adult) * 0.7),
		Infant: roundTo10(float64(adult) * 0.1),
	}
}

// categoriesFor combines the factors of every matched category with a
// geometric mean (nth root of the product over n matches). Unmatched
// categories contribute nothing; no match at all is neutral.
func categoriesFor(categories []string) float64 {
	prod, n := 1.0, 0
	for _, c := range categories {
		if f, ok := categoryFactor[strings.ToLower(strings.TrimSpace(c))]; ok {
			prod *= f
			n++
		}
	}
	if n == 0 {
		return 1.0
	}
	return math.Pow(prod, 1.0/float64(n))
}

func roundTo10(v float64) int {
	if v < 0 {
		return 0
	}
	return int(math.Round(v/10)) * 10
}
