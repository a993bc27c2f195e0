package pricing_test

import (
	"testing"

	"travel_catalog/internal/pricing"
)

func TestQuote_ReferenceScenario(t *testing.T) {
	// Japan 300 x Asia 0.8 x Food & Drink 1.2 x duration 0.8 x rating 1.2
	// = 276.48 -> adult 280, child 200, infant 30.
	got := pricing.Quote(pricing.Input{
		Country:       "Japan",
		Continent:     "Asia",
		Categories:    []string{"Food & Drink"},
		DurationHours: 3,
		Rating:        4.6,
	})
	if got.Adult != 280 || got.Child != 200 || got.Infant != 30 {
		t.Fatalf("got %+v, want {280 200 30}", got)
	}
}

func TestQuote_UnknownLookupsUseDefaults(t *testing.T) {
	got := pricing.Quote(pricing.Input{
		Country:       "Atlantis",
		Continent:     "Lemuria",
		Categories:    []string{"Time Travel"},
		DurationHours: 6,
	})
	// default base 250, every factor neutral at 6h / no rating.
	if got.Adult != 250 {
		t.Fatalf("adult = %d, want 250", got.Adult)
	}
}

func TestQuote_TierInvariants(t *testing.T) {
	inputs := []pricing.Input{
		{Country: "Japan", Continent: "Asia", DurationHours: 2, Rating: 4.9},
		{Country: "Vietnam", Continent: "Asia", Categories: []string{"Walking"}, DurationHours: 3, Rating: 3.1},
		{Country: "France", Continent: "Europe", Categories: []string{"Wellness", "Cruise"}, DurationHours: 14, Rating: 4.7, Private: true},
		{Country: "Nowhere", DurationHours: 0},
		{Country: "Iceland", Continent: "Europe", Categories: []string{"Adventure"}, DurationHours: 10, Rating: 4.4, Private: true},
	}
	for _, in := range inputs {
		p := pricing.Quote(in)
		if p.Adult < p.Child || p.Child < p.Infant || p.Infant < 0 {
			t.Errorf("%+v: tiers not monotonic: %+v", in, p)
		}
		for _, v := range []int{p.Adult, p.Child, p.Infant} {
			if v%10 != 0 {
				t.Errorf("%+v: %d is not a multiple of 10", in, v)
			}
		}
	}
}

func TestQuote_GeometricMeanBetweenExtremes(t *testing.T) {
	base := pricing.Input{Country: "Italy", Continent: "Europe", DurationHours: 6, Rating: 4.2}

	lo := base
	lo.Categories = []string{"Walking"} // 0.85
	hi := base
	hi.Categories = []string{"Wellness"} // 1.35
	mid := base
	mid.Categories = []string{"Walking", "Wellness"}

	l, m, h := pricing.Quote(lo).Adult, pricing.Quote(mid).Adult, pricing.Quote(hi).Adult
	if !(l < m && m < h) {
		t.Fatalf("geometric mean should land between extremes: %d %d %d", l, m, h)
	}
}

func TestQuote_PrivatePremium(t *testing.T) {
	in := pricing.Input{Country: "Australia", Continent: "Oceania", DurationHours: 6, Rating: 4.2}
	shared := pricing.Quote(in)
	in.Private = true
	private := pricing.Quote(in)
	if private.Adult <= shared.Adult {
		t.Fatalf("private %d should exceed shared %d", private.Adult, shared.Adult)
	}
}

func TestQuote_DurationBuckets(t *testing.T) {
	prev := 0
	for _, h := range []float64{4, 8, 12, 13} {
		p := pricing.Quote(pricing.Input{Country: "Japan", Continent: "Asia", DurationHours: h})
		if p.Adult < prev {
			t.Fatalf("duration factor should be non-decreasing across buckets, %v -> %d after %d", h, p.Adult, prev)
		}
		prev = p.Adult
	}
}
