package geoip

import (
	"context"
	"errors"
	"os"
	"time"

	"travel_catalog/internal/domain"
)

// countryInfo backs both the currency completion for thin provider
// payloads and the timezone heuristic.
var countryInfo = map[string]struct {
	Name     string
	Currency string
}{
	"AU": {"Australia", "AUD"},
	"NZ": {"New Zealand", "NZD"},
	"JP": {"Japan", "JPY"},
	"KR": {"South Korea", "KRW"},
	"TH": {"Thailand", "THB"},
	"VN": {"Vietnam", "VND"},
	"ID": {"Indonesia", "IDR"},
	"IN": {"India", "INR"},
	"SG": {"Singapore", "SGD"},
	"FR": {"France", "EUR"},
	"IT": {"Italy", "EUR"},
	"ES": {"Spain", "EUR"},
	"DE": {"Germany", "EUR"},
	"GR": {"Greece", "EUR"},
	"PT": {"Portugal", "EUR"},
	"NL": {"Netherlands", "EUR"},
	"GB": {"United Kingdom", "GBP"},
	"CH": {"Switzerland", "CHF"},
	"IS": {"Iceland", "ISK"},
	"US": {"United States", "USD"},
	"CA": {"Canada", "CAD"},
	"MX": {"Mexico", "MXN"},
	"BR": {"Brazil", "BRL"},
	"AR": {"Argentina", "ARS"},
	"PE": {"Peru", "PEN"},
	"EG": {"Egypt", "EGP"},
	"MA": {"Morocco", "MAD"},
	"ZA": {"South Africa", "ZAR"},
	"TR": {"Turkey", "TRY"},
}

func currencyForCountry(code string) string {
	return countryInfo[code].Currency
}

func countryName(code string) string {
	return countryInfo[code].Name
}

// zoneCountry maps IANA zone names to a country code for the timezone
// heuristic provider.
var zoneCountry = map[string]string{
	"Australia/Sydney":    "AU",
	"Australia/Melbourne": "AU",
	"Australia/Brisbane":  "AU",
	"Australia/Perth":     "AU",
	"Pacific/Auckland":    "NZ",
	"Asia/Tokyo":          "JP",
	"Asia/Seoul":          "KR",
	"Asia/Bangkok":        "TH",
	"Asia/Ho_Chi_Minh":    "VN",
	"Asia/Jakarta":        "ID",
	"Asia/Kolkata":        "IN",
	"Asia/Singapore":      "SG",
	"Europe/Paris":        "FR",
	"Europe/Rome":         "IT",
	"Europe/Madrid":       "ES",
	"Europe/Berlin":       "DE",
	"Europe/Athens":       "GR",
	"Europe/Lisbon":       "PT",
	"Europe/Amsterdam":    "NL",
	"Europe/London":       "GB",
	"Europe/Zurich":       "CH",
	"Atlantic/Reykjavik":  "IS",
	"America/New_York":    "US",
	"America/Chicago":     "US",
	"America/Denver":      "US",
	"America/Los_Angeles": "US",
	"America/Toronto":     "CA",
	"America/Vancouver":   "CA",
	"America/Mexico_City": "MX",
	"America/Sao_Paulo":   "BR",
	"America/Lima":        "PE",
	"Africa/Cairo":        "EG",
	"Africa/Casablanca":   "MA",
	"Africa/Johannesburg": "ZA",
	"Europe/Istanbul":     "TR",
}

// TimezoneHeuristic maps the runtime's resolved timezone to a country via
// the static zone table. It never talks to the network.
type TimezoneHeuristic struct {
	// Zone overrides detection, for tests.
	Zone string
}

func (TimezoneHeuristic) Name() string { return "timezone" }

func (t TimezoneHeuristic) Probe(ctx context.Context) (domain.Location, error) {
	zone := t.Zone
	if zone == "" {
		zone = os.Getenv("TZ")
	}
	if zone == "" {
		if n := time.Local.String(); n != "Local" {
			zone = n
		}
	}
	if zone == "" {
		return domain.Location{}, errors.New("geoip: no resolvable timezone")
	}
	cc, ok := zoneCountry[zone]
	if !ok {
		return domain.Location{}, errors.New("geoip: timezone not in table")
	}
	info := countryInfo[cc]
	return domain.Location{
		Country:      info.Name,
		CountryCode:  cc,
		CurrencyCode: info.Currency,
		Timezone:     zone,
	}, nil
}

// DefaultLocation is the hard-coded last resort of the chain.
var DefaultLocation = domain.Location{
	Country:      "Australia",
	CountryCode:  "AU",
	CurrencyCode: "AUD",
	Timezone:     "Australia/Sydney",
}

var (
	_ domain.LocationProvider = TimezoneHeuristic{}
)
