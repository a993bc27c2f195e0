package domain

// Location is a resolved viewer locale. Produced once per TTL window by the
// location resolver and shared read-only by all callers.
type Location struct {
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	CurrencyCode string `json:"currency_code"`
	City         string `json:"city,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
}

// Usable reports whether a provider payload carries enough to act on.
func (l Location) Usable() bool {
	return l.CountryCode != "" && l.CurrencyCode != ""
}

// Currency is one entry of the fixed reference set loaded at process start.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Glyph  string `json:"glyph,omitempty"`
}
