package domain

import "context"

// CatalogSource supplies the raw delimited catalog text. The orchestrator
// treats any error as "source unavailable" and serves its fallback catalog.
type CatalogSource interface {
	Fetch(ctx context.Context) (string, error)
	// FetchReviews returns the auxiliary reviews table; empty string when
	// the source has none.
	FetchReviews(ctx context.Context) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SelectionStore persists the viewer's chosen currency code: read once at
// startup, written on every explicit change.
type SelectionStore interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, code string) error
}

// LocationProvider is one strategy in the resolver's fallback chain. A miss
// (unusable payload or transport failure) is reported as an error; the
// resolver falls through to the next provider and never surfaces it.
type LocationProvider interface {
	Name() string
	Probe(ctx context.Context) (Location, error)
}

// RateSource yields a fresh exchange-rate table keyed by currency code,
// rates relative to the base currency.
type RateSource interface {
	Rates(ctx context.Context) (map[string]float64, error)
}
