package geoip

import (
	"strings"

	"travel_catalog/internal/domain"
)

// Alias registries for vendor payload shapes (single source of truth).
var payloadAliases = map[string][]string{
	"country":  {"country", "country_name", "countryName"},
	"code":     {"country_code", "countryCode", "country.iso_code"},
	"currency": {"currency", "currency.code", "currency_code", "currencyCode"},
	"city":     {"city", "location.city"},
	"timezone": {"timezone", "timezone.id", "time_zone.name"},
}

// mapPayload lifts a vendor JSON object into a Location. It returns false
// when the payload is an explicit failure envelope or carries no country
// code; a missing currency is completed from the static country table.
func mapPayload(m map[string]any) (domain.Location, bool) {
	if failedEnvelope(m) {
		return domain.Location{}, false
	}

	loc := domain.Location{
		Country:      lookupAlias(m, "country"),
		CountryCode:  strings.ToUpper(lookupAlias(m, "code")),
		CurrencyCode: strings.ToUpper(lookupAlias(m, "currency")),
		City:         lookupAlias(m, "city"),
		Timezone:     lookupAlias(m, "timezone"),
	}
	if loc.CountryCode == "" {
		return domain.Location{}, false
	}
	if loc.CurrencyCode == "" {
		loc.CurrencyCode = currencyForCountry(loc.CountryCode)
	}
	if loc.Country == "" {
		loc.Country = countryName(loc.CountryCode)
	}
	return loc, loc.Usable()
}

// failedEnvelope recognizes the common "soft failure" bodies vendors ship
// with a 200 status ({"status":"fail"}, {"success":false}).
func failedEnvelope(m map[string]any) bool {
	if s, ok := m["status"].(string); ok && strings.EqualFold(s, "fail") {
		return true
	}
	if b, ok := m["success"].(bool); ok && !b {
		return true
	}
	return false
}

func lookupAlias(m map[string]any, key string) string {
	for _, path := range payloadAliases[key] {
		if s := lookupStr(m, path); s != "" {
			return s
		}
	}
	return ""
}

// lookupStr returns the string at a dot path or "".
func lookupStr(m map[string]any, path string) string {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		v, ok := obj[part]
		if !ok {
			return ""
		}
		cur = v
	}
	s, _ := cur.(string)
	return s
}
