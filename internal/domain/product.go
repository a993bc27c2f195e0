package domain

// PriceSet is a three-tier price in the catalog's base currency.
// Each tier is a whole amount, always a multiple of 10, and
// Adult >= Child >= Infant >= 0.
type PriceSet struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Infant int `json:"infant"`
}

// ImageSet carries the display images for a product. Hero is never empty;
// Gallery never repeats Hero or itself.
type ImageSet struct {
	Hero    string   `json:"hero"`
	Gallery []string `json:"gallery"`
}

// Product is a fully enriched catalog entity. Instances are built once per
// load and shared read-only; a reload replaces the whole collection.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	DestinationName    string   `json:"destination_name"`
	DestinationCountry string   `json:"destination_country"`
	Continent          string   `json:"continent"`
	DurationHours      float64  `json:"duration_hours"`
	DurationLabel      string   `json:"duration_label"`
	Private            bool     `json:"private"`
	Overview           string   `json:"overview"`
	Highlights         []string `json:"highlights,omitempty"`
	Inclusions         []string `json:"inclusions,omitempty"`
	Exclusions         []string `json:"exclusions,omitempty"`
	Currency           string   `json:"currency"`
	Pricing            PriceSet `json:"pricing"`
	Categories         []string `json:"categories,omitempty"`
	Images             ImageSet `json:"images"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	Popular            bool     `json:"popular"`
}
