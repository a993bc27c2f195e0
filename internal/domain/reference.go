package domain

// Destination is reference data keyed by slug, immutable after load.
type Destination struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Continent string `json:"continent"`
}

// Category is reference data keyed by slug, immutable after load.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Title     string  `json:"title,omitempty"`
	Text      string  `json:"text,omitempty"`
}
