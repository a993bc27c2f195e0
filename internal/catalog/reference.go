package catalog

import (
	"strings"

	"travel_catalog/internal/domain"
)

// Built-in reference tables. Loaded once, immutable; destinations backfill
// country/continent for rows that omit them.

var destinations = []domain.Destination{
	{Slug: "tokyo", Name: "Tokyo", Country: "Japan", Continent: "Asia"},
	{Slug: "kyoto", Name: "Kyoto", Country: "Japan", Continent: "Asia"},
	{Slug: "bangkok", Name: "Bangkok", Country: "Thailand", Continent: "Asia"},
	{Slug: "paris", Name: "Paris", Country: "France", Continent: "Europe"},
	{Slug: "rome", Name: "Rome", Country: "Italy", Continent: "Europe"},
	{Slug: "barcelona", Name: "Barcelona", Country: "Spain", Continent: "Europe"},
	{Slug: "london", Name: "London", Country: "United Kingdom", Continent: "Europe"},
	{Slug: "new-york", Name: "New York", Country: "United States", Continent: "North America"},
	{Slug: "cancun", Name: "Cancun", Country: "Mexico", Continent: "North America"},
	{Slug: "cusco", Name: "Cusco", Country: "Peru", Continent: "South America"},
	{Slug: "sydney", Name: "Sydney", Country: "Australia", Continent: "Oceania"},
	{Slug: "queenstown", Name: "Queenstown", Country: "New Zealand", Continent: "Oceania"},
	{Slug: "cairo", Name: "Cairo", Country: "Egypt", Continent: "Africa"},
	{Slug: "marrakech", Name: "Marrakech", Country: "Morocco", Continent: "Africa"},
}

var categories = []domain.Category{
	{Slug: "food-drink", Name: "Food & Drink"},
	{Slug: "adventure", Name: "Adventure"},
	{Slug: "culture", Name: "Culture"},
	{Slug: "history", Name: "History"},
	{Slug: "nature", Name: "Nature"},
	{Slug: "wildlife", Name: "Wildlife"},
	{Slug: "cruise", Name: "Cruise"},
	{Slug: "wellness", Name: "Wellness"},
	{Slug: "walking", Name: "Walking"},
	{Slug: "family", Name: "Family"},
	{Slug: "nightlife", Name: "Nightlife"},
}

func destinationByName(name string) (domain.Destination, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, d := range destinations {
		if strings.ToLower(d.Name) == n {
			return d, true
		}
	}
	return domain.Destination{}, false
}
